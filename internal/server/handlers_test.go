package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouni/gemini-landscape-kit/internal/history"
	"github.com/shouni/gemini-landscape-kit/pkg/domain"
	"github.com/shouni/gemini-landscape-kit/pkg/generator"
)

// fakeDesigner は generator.Designer のテスト用モック。
type fakeDesigner struct {
	redesignFunc func(cfg domain.RedesignConfiguration, src domain.Image) (*domain.GeneratedResult, error)
	refineFunc   func(src domain.Image, mods domain.RefinementModifications) (*domain.Image, error)
	suggestions  []string
	elementImage *domain.Image
	elementInfo  string
	err          error
}

func (f *fakeDesigner) Redesign(_ context.Context, cfg domain.RedesignConfiguration, src domain.Image) (*domain.GeneratedResult, error) {
	return f.redesignFunc(cfg, src)
}

func (f *fakeDesigner) Refine(_ context.Context, src domain.Image, mods domain.RefinementModifications) (*domain.Image, error) {
	return f.refineFunc(src, mods)
}

func (f *fakeDesigner) ReplacementSuggestions(context.Context, string, []string, string) []string {
	return f.suggestions
}

func (f *fakeDesigner) ElementImage(context.Context, string) (*domain.Image, error) {
	return f.elementImage, f.err
}

func (f *fakeDesigner) ElementInfo(context.Context, string) (string, error) {
	return f.elementInfo, f.err
}

func setup(t *testing.T, d generator.Designer) (*gin.Engine, *history.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store, err := history.NewStore(10)
	require.NoError(t, err)
	return NewRouter(NewHandlers(d, store)), store
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	router, _ := setup(t, &fakeDesigner{})
	w := doJSON(t, router, http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}

func TestRedesign(t *testing.T) {
	t.Run("成功すると履歴に保存され画像を取得できる", func(t *testing.T) {
		var gotCfg domain.RedesignConfiguration
		d := &fakeDesigner{redesignFunc: func(cfg domain.RedesignConfiguration, src domain.Image) (*domain.GeneratedResult, error) {
			gotCfg = cfg
			return &domain.GeneratedResult{
				Image:   domain.Image{Data: []byte("new-image"), MimeType: "image/png"},
				Catalog: domain.DesignCatalog{Plants: []domain.Plant{{Name: "Rose", Species: "Rosa"}}, Features: []domain.Feature{}},
			}, nil
		}}
		router, store := setup(t, d)

		w := doJSON(t, router, http.MethodPost, "/api/v1/redesign", gin.H{
			"image":       []byte("source"),
			"mimeType":    "image/jpeg",
			"styles":      []string{"modern", "zen"},
			"climateZone": "Desert Southwest",
			"density":     "lush",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp designResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, []byte("new-image"), resp.Image)
		assert.Equal(t, "Rose", resp.Catalog.Plants[0].Name)
		assert.Equal(t, domain.DensityLush, gotCfg.Density)
		assert.Equal(t, []string{"modern", "zen"}, gotCfg.Styles)
		assert.Equal(t, 1, store.Len())

		img := doJSON(t, router, http.MethodGet, "/api/v1/history/"+resp.ID+"/image", nil)
		assert.Equal(t, http.StatusOK, img.Code)
		assert.Equal(t, "new-image", img.Body.String())
		assert.Equal(t, "image/png", img.Header().Get("Content-Type"))

		orig := doJSON(t, router, http.MethodGet, "/api/v1/history/"+resp.ID+"/original", nil)
		assert.Equal(t, "source", orig.Body.String())
	})

	t.Run("スタイルがなければ 400", func(t *testing.T) {
		router, _ := setup(t, &fakeDesigner{})
		w := doJSON(t, router, http.MethodPost, "/api/v1/redesign", gin.H{"image": []byte("source"), "styles": []string{}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("画像が空なら上流に送らず 400", func(t *testing.T) {
		called := false
		d := &fakeDesigner{redesignFunc: func(domain.RedesignConfiguration, domain.Image) (*domain.GeneratedResult, error) {
			called = true
			return nil, nil
		}}
		router, _ := setup(t, d)

		w := doJSON(t, router, http.MethodPost, "/api/v1/redesign", gin.H{"image": "", "styles": []string{"modern"}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, called)
	})

	t.Run("ContentBlocked は 422", func(t *testing.T) {
		d := &fakeDesigner{redesignFunc: func(domain.RedesignConfiguration, domain.Image) (*domain.GeneratedResult, error) {
			return nil, &generator.GenerationError{Kind: generator.KindContentBlocked, Reason: "SAFETY"}
		}}
		router, store := setup(t, d)

		w := doJSON(t, router, http.MethodPost, "/api/v1/redesign", gin.H{"image": []byte("source"), "styles": []string{"modern"}})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "ContentBlocked")
		assert.Equal(t, 0, store.Len())
	})

	t.Run("その他の生成エラーは 502", func(t *testing.T) {
		d := &fakeDesigner{redesignFunc: func(domain.RedesignConfiguration, domain.Image) (*domain.GeneratedResult, error) {
			return nil, generator.Translate(errors.New("boom"))
		}}
		router, _ := setup(t, d)

		w := doJSON(t, router, http.MethodPost, "/api/v1/redesign", gin.H{"image": []byte("source"), "styles": []string{"modern"}})
		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), "Gemini API error: boom")
	})
}

func TestRefine(t *testing.T) {
	d := &fakeDesigner{refineFunc: func(src domain.Image, mods domain.RefinementModifications) (*domain.Image, error) {
		assert.Equal(t, []string{"shed"}, mods.Deletions)
		return &domain.Image{Data: []byte("refined"), MimeType: "image/png"}, nil
	}}
	router, store := setup(t, d)

	w := doJSON(t, router, http.MethodPost, "/api/v1/refine", gin.H{
		"image":         []byte("design"),
		"mimeType":      "image/png",
		"modifications": gin.H{"deletions": []string{"shed"}},
		"catalog":       gin.H{"plants": []gin.H{{"name": "Fern", "species": "Polystichum"}}},
		"styles":        []string{"woodland"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp designResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []byte("refined"), resp.Image)
	assert.Equal(t, []domain.Plant{{Name: "Fern", Species: "Polystichum"}}, resp.Catalog.Plants, "既存のカタログを引き継ぐ")
	assert.NotNil(t, resp.Catalog.Features)

	it, ok := store.Get(resp.ID)
	require.True(t, ok)
	assert.Equal(t, "Fern", it.DesignCatalog.Plants[0].Name)
}

func TestRefine_EmptyImage(t *testing.T) {
	called := false
	d := &fakeDesigner{refineFunc: func(domain.Image, domain.RefinementModifications) (*domain.Image, error) {
		called = true
		return nil, nil
	}}
	router, _ := setup(t, d)

	w := doJSON(t, router, http.MethodPost, "/api/v1/refine", gin.H{"image": "", "modifications": gin.H{"additions": []string{"bench"}}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, called)
}

func TestSuggestions(t *testing.T) {
	router, _ := setup(t, &fakeDesigner{suggestions: generator.FallbackSuggestions()})

	w := doJSON(t, router, http.MethodPost, "/api/v1/suggestions", gin.H{"elementName": "Oak Tree", "styles": []string{"modern"}})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Suggestions []string `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, generator.FallbackSuggestions(), resp.Suggestions)
}

func TestElementEndpoints(t *testing.T) {
	t.Run("画像は data URL で返す", func(t *testing.T) {
		router, _ := setup(t, &fakeDesigner{elementImage: &domain.Image{Data: []byte("abc"), MimeType: "image/png"}})
		w := doJSON(t, router, http.MethodGet, "/api/v1/elements/Agave/image", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "data:image/png;base64,YWJj")
	})

	t.Run("説明文を返す", func(t *testing.T) {
		router, _ := setup(t, &fakeDesigner{elementInfo: "A hardy succulent."})
		w := doJSON(t, router, http.MethodGet, "/api/v1/elements/Agave/info", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "A hardy succulent.")
	})

	t.Run("失敗は 502", func(t *testing.T) {
		router, _ := setup(t, &fakeDesigner{err: generator.Translate(errors.New("quota"))})
		w := doJSON(t, router, http.MethodGet, "/api/v1/elements/Agave/info", nil)
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestHistoryNotFound(t *testing.T) {
	router, _ := setup(t, &fakeDesigner{})
	assert.Equal(t, http.StatusNotFound, doJSON(t, router, http.MethodGet, "/api/v1/history/missing", nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(t, router, http.MethodGet, "/api/v1/history/missing/image", nil).Code)
}
