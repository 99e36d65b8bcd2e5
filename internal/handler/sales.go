package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
	"github.com/osse101/CraftPlanner_Go/internal/logger"
	"github.com/osse101/CraftPlanner_Go/internal/sales"
)

// SalesHandler exposes a profile's sales ledger and its analysis
type SalesHandler struct {
	service sales.Service
}

func NewSalesHandler(service sales.Service) *SalesHandler {
	return &SalesHandler{service: service}
}

type SaleRecordRequest struct {
	Order    int    `json:"order" validate:"required,gt=0"`
	ItemName string `json:"itemName" validate:"required,max=200"`
	Quantity int    `json:"quantity" validate:"gte=0"`
	Kamas    int    `json:"kamas" validate:"gte=0"`
	SaleType string `json:"saleType" validate:"max=50"`
	SaleDate string `json:"saleDate" validate:"saledate"`
}

type ImportSalesRequest struct {
	Sales []SaleRecordRequest `json:"sales" validate:"required,dive"`
}

type SalesResponse struct {
	Sales []domain.SaleRecord `json:"sales"`
}

func (s SaleRecordRequest) toDomain() domain.SaleRecord {
	return domain.SaleRecord{
		Order:    s.Order,
		ItemName: s.ItemName,
		Quantity: s.Quantity,
		Kamas:    s.Kamas,
		SaleType: s.SaleType,
		SaleDate: s.SaleDate,
	}
}

func salesResponse(records []domain.SaleRecord) SalesResponse {
	if records == nil {
		records = []domain.SaleRecord{}
	}
	return SalesResponse{Sales: records}
}

// HandleList returns the sales sorted by order number
// @Summary List sales
// @Tags sales
// @Produce json
// @Param profile path string true "Profile name"
// @Success 200 {object} SalesResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/profiles/{profile}/sales [get]
func (h *SalesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	name, ok := GetProfileParam(r, w)
	if !ok {
		return
	}

	records, err := h.service.List(r.Context(), name)
	if err != nil {
		respondServiceError(w, r, ActionListSales, err)
		return
	}
	respondJSON(w, http.StatusOK, salesResponse(records))
}

// HandleImport merges records into the ledger; a record whose order number
// already exists replaces the stored one
// @Summary Import sales
// @Description Merges records by order number and returns the full ledger
// @Tags sales
// @Accept json
// @Produce json
// @Param profile path string true "Profile name"
// @Param request body ImportSalesRequest true "Sale records"
// @Success 200 {object} SalesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/profiles/{profile}/sales [post]
func (h *SalesHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	name, ok := GetProfileParam(r, w)
	if !ok {
		return
	}

	var req ImportSalesRequest
	if err := DecodeAndValidateRequest(r, w, &req, ActionImportSales); err != nil {
		return
	}

	records := make([]domain.SaleRecord, 0, len(req.Sales))
	for _, s := range req.Sales {
		records = append(records, s.toDomain())
	}

	merged, err := h.service.Import(r.Context(), name, records)
	if err != nil {
		respondServiceError(w, r, ActionImportSales, err)
		return
	}
	respondJSON(w, http.StatusOK, salesResponse(merged))
}

// HandleImportImages extracts sales from uploaded screenshots and merges them
// @Summary Import sales from screenshots
// @Description Extracts sale records from every uploaded image; nothing is stored when one extraction fails
// @Tags sales
// @Accept multipart/form-data
// @Produce json
// @Param profile path string true "Profile name"
// @Param images formData file true "Sales history screenshots"
// @Success 200 {object} SalesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 501 {object} ErrorResponse
// @Router /api/v1/profiles/{profile}/sales/images [post]
func (h *SalesHandler) HandleImportImages(w http.ResponseWriter, r *http.Request) {
	name, ok := GetProfileParam(r, w)
	if !ok {
		return
	}
	log := logger.FromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadBytes)
	if err := r.ParseMultipartForm(MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, ErrMsgImageTooLarge)
			return
		}
		log.Warn("Failed to parse screenshot upload", "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidUpload)
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	files := r.MultipartForm.File[ImagesFormField]
	if len(files) == 0 {
		respondError(w, http.StatusBadRequest, ErrMsgNoImages)
		return
	}
	if len(files) > MaxImagesPerUpload {
		log.Warn("Too many screenshots in upload", "count", len(files), "limit", MaxImagesPerUpload)
		respondError(w, http.StatusBadRequest, ErrMsgTooManyImages)
		return
	}

	images := make([][]byte, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidUpload)
			return
		}
		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidUpload)
			return
		}
		images = append(images, data)
	}

	merged, err := h.service.ImportImages(r.Context(), name, images)
	if err != nil {
		respondServiceError(w, r, ActionImportImages, err)
		return
	}
	respondJSON(w, http.StatusOK, salesResponse(merged))
}

// HandleRemove deletes one sale by order number
// @Summary Remove sale
// @Tags sales
// @Produce json
// @Param profile path string true "Profile name"
// @Param order path int true "Order number"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/profiles/{profile}/sales/{order} [delete]
func (h *SalesHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	name, ok := GetProfileParam(r, w)
	if !ok {
		return
	}
	order, ok := GetIntParam(r, w, ParamOrder)
	if !ok {
		return
	}

	if err := h.service.Remove(r.Context(), name, order); err != nil {
		respondServiceError(w, r, ActionRemoveSale, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSaleRemoved})
}

// HandleClear empties the sales ledger
// @Summary Clear sales
// @Tags sales
// @Produce json
// @Param profile path string true "Profile name"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/profiles/{profile}/sales [delete]
func (h *SalesHandler) HandleClear(w http.ResponseWriter, r *http.Request) {
	name, ok := GetProfileParam(r, w)
	if !ok {
		return
	}

	if err := h.service.Clear(r.Context(), name); err != nil {
		respondServiceError(w, r, ActionClearSales, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSalesCleared})
}

// HandleSummary returns totals, top items and the daily kamas series
// @Summary Sales summary
// @Description Totals, most profitable items and kamas per day
// @Tags sales
// @Produce json
// @Param profile path string true "Profile name"
// @Success 200 {object} domain.SalesSummary
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/profiles/{profile}/sales/summary [get]
func (h *SalesHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	name, ok := GetProfileParam(r, w)
	if !ok {
		return
	}

	summary, err := h.service.Summary(r.Context(), name)
	if err != nil {
		respondServiceError(w, r, ActionSalesSummary, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}
