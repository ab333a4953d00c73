package server

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shouni/gemini-landscape-kit/internal/history"
	"github.com/shouni/gemini-landscape-kit/pkg/domain"
	"github.com/shouni/gemini-landscape-kit/pkg/generator"
	"github.com/shouni/gemini-landscape-kit/pkg/imgutil"
)

// Handlers は Designer と履歴ストアを HTTP に公開します。
type Handlers struct {
	designer generator.Designer
	history  *history.Store
}

func NewHandlers(designer generator.Designer, store *history.Store) *Handlers {
	return &Handlers{designer: designer, history: store}
}

type redesignRequest struct {
	Image                  []byte         `json:"image" binding:"required,min=1"`
	MimeType               string         `json:"mimeType"`
	Styles                 []string       `json:"styles" binding:"required,min=1"`
	AllowStructuralChanges bool           `json:"allowStructuralChanges"`
	ClimateZone            string         `json:"climateZone"`
	LockAspectRatio        bool           `json:"lockAspectRatio"`
	Density                domain.Density `json:"density"`
}

type refineRequest struct {
	Image         []byte                         `json:"image" binding:"required,min=1"`
	MimeType      string                         `json:"mimeType"`
	Modifications domain.RefinementModifications `json:"modifications"`
	Catalog       domain.DesignCatalog           `json:"catalog"`
	Styles        []string                       `json:"styles"`
	ClimateZone   string                         `json:"climateZone"`
}

type suggestionsRequest struct {
	ElementName string   `json:"elementName" binding:"required"`
	Styles      []string `json:"styles"`
	ClimateZone string   `json:"climateZone"`
}

type designResponse struct {
	ID       string               `json:"id"`
	Image    []byte               `json:"image"`
	MimeType string               `json:"mimeType"`
	Catalog  domain.DesignCatalog `json:"catalog"`
}

func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "gemini-landscape-kit",
	})
}

// Redesign は再デザインを実行し、結果を履歴に保存します。
func (h *Handlers) Redesign(c *gin.Context) {
	var req redesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	src := domain.Image{Data: req.Image, MimeType: req.MimeType}
	cfg := domain.RedesignConfiguration{
		Styles:                 req.Styles,
		AllowStructuralChanges: req.AllowStructuralChanges,
		ClimateZone:            req.ClimateZone,
		LockAspectRatio:        req.LockAspectRatio,
		Density:                req.Density,
	}

	result, err := h.designer.Redesign(c.Request.Context(), cfg, src)
	if err != nil {
		respondError(c, err)
		return
	}

	it, err := h.history.SaveNewRedesign(history.Entry{
		OriginalImage:   src,
		RedesignedImage: result.Image,
		Catalog:         result.Catalog,
		Styles:          req.Styles,
		ClimateZone:     req.ClimateZone,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, designResponse{
		ID:       it.ID,
		Image:    result.Image.Data,
		MimeType: result.Image.MimeType,
		Catalog:  result.Catalog,
	})
}

// Refine は修正を実行します。修正ではカタログが再生成されないため、受け取ったカタログを引き継ぎます。
func (h *Handlers) Refine(c *gin.Context) {
	var req refineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	src := domain.Image{Data: req.Image, MimeType: req.MimeType}
	img, err := h.designer.Refine(c.Request.Context(), src, req.Modifications)
	if err != nil {
		respondError(c, err)
		return
	}

	designCatalog := req.Catalog.Normalize()
	it, err := h.history.SaveNewRedesign(history.Entry{
		OriginalImage:   src,
		RedesignedImage: *img,
		Catalog:         designCatalog,
		Styles:          req.Styles,
		ClimateZone:     req.ClimateZone,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, designResponse{
		ID:       it.ID,
		Image:    img.Data,
		MimeType: img.MimeType,
		Catalog:  designCatalog,
	})
}

// Suggestions は失敗しない。上流の障害時も代替リストを 200 で返す。
func (h *Handlers) Suggestions(c *gin.Context) {
	var req suggestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	suggestions := h.designer.ReplacementSuggestions(c.Request.Context(), req.ElementName, req.Styles, req.ClimateZone)
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

func (h *Handlers) ElementImage(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "element name is required"})
		return
	}
	img, err := h.designer.ElementImage(c.Request.Context(), name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dataUrl": imgutil.DataURL(*img)})
}

func (h *Handlers) ElementInfo(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "element name is required"})
		return
	}
	info, err := h.designer.ElementInfo(c.Request.Context(), name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"info": info})
}

func (h *Handlers) ListHistory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.history.List()})
}

func (h *Handlers) GetHistoryItem(c *gin.Context) {
	it, ok := h.history.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "design not found"})
		return
	}
	c.JSON(http.StatusOK, it)
}

// HistoryImage は生成画像のバイナリをそのまま返します。
func (h *Handlers) HistoryImage(c *gin.Context) {
	img, ok := h.history.GetImage(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "image not found"})
		return
	}
	c.Data(http.StatusOK, img.MimeType, img.Data)
}

// HistoryOriginalImage は元画像のバイナリを返します。
func (h *Handlers) HistoryOriginalImage(c *gin.Context) {
	it, ok := h.history.Get(c.Param("id"))
	if !ok || it.OriginalImage.IsEmpty() {
		c.JSON(http.StatusNotFound, gin.H{"error": "image not found"})
		return
	}
	c.Data(http.StatusOK, it.OriginalImage.MimeType, it.OriginalImage.Data)
}

// respondError は生成エラーの種類を HTTP ステータスに写します。
func respondError(c *gin.Context, err error) {
	status := http.StatusBadGateway
	kind := generator.KindOf(err)
	if kind == generator.KindContentBlocked {
		status = http.StatusUnprocessableEntity
	}
	slog.WarnContext(c.Request.Context(), "生成リクエストが失敗しました", "path", c.FullPath(), "kind", kind.String(), "error", err)
	c.JSON(status, gin.H{"error": err.Error(), "kind": kind.String()})
}
