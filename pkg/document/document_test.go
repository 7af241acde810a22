package document

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	apierrors "github.com/BenjaminHaaseT/recipe-api/pkg/errors"
	"github.com/BenjaminHaaseT/recipe-api/pkg/header"
	"github.com/BenjaminHaaseT/recipe-api/pkg/recipe"
	"github.com/BenjaminHaaseT/recipe-api/pkg/serializer"
)

var (
	recipeID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	flourID  = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

func pancakes(t *testing.T) *recipe.Recipe {
	t.Helper()
	r, err := recipe.NewBuilder().
		WithID(recipeID).
		WithName("Pancakes").
		WithDifficulty(recipe.DifficultyEasy).
		WithDuration(15).
		WithDescription("Fluffy pancakes").
		WithDirections("Mix and fry.").
		AddIngredient(recipe.NewIngredient(flourID, "flour", "cup", "2")).
		AddTag("breakfast").
		WithImage([]byte{0x89, 0x50}).
		Build()
	require.NoError(t, err)
	return r
}

func validDocument(t *testing.T) *Document {
	t.Helper()
	return FromRecipe(pancakes(t))
}

func TestFromRecipe(t *testing.T) {
	doc := FromRecipe(pancakes(t), WithToolVersion("v1.2.3"))

	assert.Equal(t, header.KindRecipe, doc.Kind)
	assert.Equal(t, APIVersion, doc.APIVersion)
	assert.Equal(t, "v1.2.3", doc.Metadata["version"])
	assert.NotEmpty(t, doc.Metadata["timestamp"])

	assert.Equal(t, recipeID.String(), doc.ID)
	assert.Equal(t, "Pancakes", doc.Name)
	assert.Equal(t, "easy", doc.Difficulty)
	require.NotNil(t, doc.Duration)
	assert.Equal(t, uint16(15), *doc.Duration)
	assert.Equal(t, "Fluffy pancakes", doc.Description)
	assert.Equal(t, "Mix and fry.", doc.Directions)
	require.Len(t, doc.Ingredients, 1)
	assert.Equal(t, flourID.String(), doc.Ingredients[0].ID)
	assert.Equal(t, []string{"breakfast"}, doc.Tags)
	assert.Equal(t, []byte{0x89, 0x50}, doc.Image)
}

func TestDocumentRecipe(t *testing.T) {
	r, err := validDocument(t).Recipe()
	require.NoError(t, err)

	assert.Equal(t, recipeID, r.ID())
	assert.Equal(t, "Pancakes", r.Name())
	assert.Equal(t, recipe.DifficultyEasy, r.Difficulty())
	assert.Equal(t, uint16(15), r.Duration())

	ing, ok := r.Ingredient(flourID)
	require.True(t, ok)
	assert.Equal(t, "flour", ing.Name)
	assert.True(t, r.HasTag("breakfast"))
	assert.Equal(t, []byte{0x89, 0x50}, r.Image())
}

func TestDocumentRecipeMissingField(t *testing.T) {
	doc := validDocument(t)
	doc.Duration = nil

	_, err := doc.Recipe()
	var mfe *recipe.MissingFieldError
	require.ErrorAs(t, err, &mfe)
	assert.Equal(t, recipe.FieldDuration, mfe.Field)
}

func TestDocumentRecipeEmptyTextIsUnset(t *testing.T) {
	doc := validDocument(t)
	doc.Name = ""

	_, err := doc.Recipe()
	var mfe *recipe.MissingFieldError
	require.ErrorAs(t, err, &mfe)
	assert.Equal(t, recipe.FieldName, mfe.Field)
}

func TestDocumentRecipeEnvelope(t *testing.T) {
	t.Run("wrong kind", func(t *testing.T) {
		doc := validDocument(t)
		doc.Kind = header.KindValidationReport

		_, err := doc.Recipe()
		var serr *apierrors.StructuredError
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, apierrors.ErrCodeInvalidDocument, serr.Code)
	})

	t.Run("missing kind", func(t *testing.T) {
		doc := validDocument(t)
		doc.Kind = ""

		_, err := doc.Recipe()
		require.Error(t, err)
	})

	t.Run("unsupported major version", func(t *testing.T) {
		doc := validDocument(t)
		doc.APIVersion = "v2"

		_, err := doc.Recipe()
		var serr *apierrors.StructuredError
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, apierrors.ErrCodeUnsupportedVersion, serr.Code)
	})

	t.Run("compatible version forms", func(t *testing.T) {
		for _, v := range []string{"v1", "1.0", "v1.0.0"} {
			doc := validDocument(t)
			doc.APIVersion = v

			_, err := doc.Recipe()
			assert.NoError(t, err, "apiVersion %q should be accepted", v)
		}
	})

	t.Run("malformed version", func(t *testing.T) {
		doc := validDocument(t)
		doc.APIVersion = "one"

		_, err := doc.Recipe()
		var serr *apierrors.StructuredError
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, apierrors.ErrCodeUnsupportedVersion, serr.Code)
	})
}

func TestDocumentRecipeInvalidValues(t *testing.T) {
	t.Run("bad recipe id", func(t *testing.T) {
		doc := validDocument(t)
		doc.ID = "not-a-uuid"

		_, err := doc.Recipe()
		var serr *apierrors.StructuredError
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, apierrors.ErrCodeInvalidDocument, serr.Code)
	})

	t.Run("bad ingredient id", func(t *testing.T) {
		doc := validDocument(t)
		doc.Ingredients[0].ID = "nope"

		_, err := doc.Recipe()
		var serr *apierrors.StructuredError
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, apierrors.ErrCodeInvalidDocument, serr.Code)
	})

	t.Run("bad difficulty", func(t *testing.T) {
		doc := validDocument(t)
		doc.Difficulty = "impossible"

		_, err := doc.Recipe()
		var serr *apierrors.StructuredError
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, apierrors.ErrCodeInvalidDocument, serr.Code)
	})
}

// Round trip through the serializer in both formats, to pin the wire shape
// the CLI reads and writes.
func TestDocumentSerializationRoundTrip(t *testing.T) {
	for _, format := range []serializer.Format{serializer.FormatJSON, serializer.FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			doc := validDocument(t)

			var buf bytes.Buffer
			w := serializer.NewWriter(format, &buf)
			require.NoError(t, w.Serialize(context.Background(), doc))

			reader, err := serializer.NewReader(format, &buf)
			require.NoError(t, err)

			var got Document
			require.NoError(t, reader.Deserialize(&got))

			r, err := got.Recipe()
			require.NoError(t, err)
			assert.Equal(t, recipeID, r.ID())
			assert.Equal(t, "Pancakes", r.Name())
			assert.Equal(t, []byte{0x89, 0x50}, r.Image())
			assert.True(t, r.HasTag("breakfast"))
		})
	}
}

// The envelope must live at the top level of the YAML document, not nested
// under a header key.
func TestDocumentYAMLEnvelopeInline(t *testing.T) {
	doc := validDocument(t)

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, yaml.Unmarshal(out, &raw))
	assert.Equal(t, "Recipe", raw["kind"])
	assert.Equal(t, "v1", raw["apiVersion"])
	assert.NotContains(t, raw, "header")
}
