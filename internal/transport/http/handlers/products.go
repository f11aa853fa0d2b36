package handlers

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/developerUmair/ecommerce-backend/internal/application/catalog"
	"github.com/developerUmair/ecommerce-backend/internal/domain"
	"github.com/developerUmair/ecommerce-backend/internal/metrics"
	"github.com/developerUmair/ecommerce-backend/internal/transport/http/dto"
	"github.com/developerUmair/ecommerce-backend/internal/transport/http/response"
)

type ProductsHandler struct {
	svc           *catalog.Service
	maxUploadSize int64
}

func NewProductsHandler(svc *catalog.Service, maxUploadSize int64) *ProductsHandler {
	if maxUploadSize <= 0 {
		maxUploadSize = 2 << 20
	}
	return &ProductsHandler{svc: svc, maxUploadSize: maxUploadSize}
}

// Create handles the multipart product form. The image part is streamed to
// the media host; only image/* parts within the size cap are accepted.
func (h *ProductsHandler) Create(w http.ResponseWriter, r *http.Request) {
	// Cap the whole body a bit above the image limit so form fields fit.
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+512*1024)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		response.Err(w, r, domain.ErrInvalidImage("body too large or malformed multipart form"))
		return
	}

	params, err := h.parseProductForm(r)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	defer params.close()

	p, err := h.svc.AddProduct(r.Context(), params.AddProductParams)
	if err != nil {
		if domain.Is(err, "media_upload_failed") {
			metrics.RecordImageUpload("failed")
		}
		response.Err(w, r, err)
		return
	}

	metrics.RecordImageUpload("success")
	response.Created(w, "product created successfully", dto.ToProductView(p))
}

type productForm struct {
	catalog.AddProductParams
	file multipart.File
}

func (f *productForm) close() {
	if f.file != nil {
		_ = f.file.Close()
	}
}

func (h *ProductsHandler) parseProductForm(r *http.Request) (*productForm, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		return nil, domain.ErrMissingField("image")
	}

	if header.Size > h.maxUploadSize {
		_ = file.Close()
		return nil, domain.ErrInvalidImage("image exceeds the maximum upload size")
	}
	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		_ = file.Close()
		return nil, domain.ErrInvalidImage("only image uploads are accepted")
	}

	form := &productForm{file: file}
	form.Image = catalog.ImageUpload{
		Filename:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Body:        file,
	}

	form.Name = r.FormValue("name")
	form.Description = r.FormValue("description")
	form.CategoryID = r.FormValue("category")

	price, err := parseFloatField(r, "price")
	if err != nil {
		form.close()
		return nil, err
	}
	form.Price = price

	stock, err := parseIntField(r, "stock", 0)
	if err != nil {
		form.close()
		return nil, err
	}
	form.Stock = stock

	quantity, err := parseIntField(r, "quantity", 0)
	if err != nil {
		form.close()
		return nil, err
	}
	form.Quantity = quantity

	form.IsFeatured = r.FormValue("is_featured") == "true"

	if err := decodeJSONField(r, "sub_category_ids", &form.SubCategoryIDs); err != nil {
		form.close()
		return nil, err
	}
	if err := decodeJSONField(r, "tags", &form.Tags); err != nil {
		form.close()
		return nil, err
	}
	if err := decodeJSONField(r, "specifications", &form.Specifications); err != nil {
		form.close()
		return nil, err
	}
	if err := decodeJSONField(r, "variants", &form.Variants); err != nil {
		form.close()
		return nil, err
	}

	return form, nil
}

func parseFloatField(r *http.Request, field string) (float64, error) {
	v := strings.TrimSpace(r.FormValue(field))
	if v == "" {
		return 0, domain.ErrMissingField(field)
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, domain.ErrInvalidField(field, "must be a number")
	}
	return f, nil
}

func parseIntField(r *http.Request, field string, def int) (int, error) {
	v := strings.TrimSpace(r.FormValue(field))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, domain.ErrInvalidField(field, "must be an integer")
	}
	return n, nil
}

// decodeJSONField parses an optional JSON-encoded form value like tags or
// variants.
func decodeJSONField(r *http.Request, field string, dst any) error {
	v := strings.TrimSpace(r.FormValue(field))
	if v == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(v), dst); err != nil {
		return domain.ErrInvalidField(field, "must be valid JSON")
	}
	return nil
}

func (h *ProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	ps, err := h.svc.ListProducts(r.Context())
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.OK(w, "", dto.ToProductViews(ps))
}

func (h *ProductsHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.OK(w, "", dto.ToProductView(p))
}

func (h *ProductsHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	ps, err := h.svc.ListProductsByCategory(r.Context(), chi.URLParam(r, "categoryId"))
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.OK(w, "", dto.ToProductViews(ps))
}

func (h *ProductsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateProductRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.Err(w, r, err)
		return
	}

	p, err := h.svc.UpdateProduct(r.Context(), chi.URLParam(r, "id"), domain.ProductPatch{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Quantity:    req.Quantity,
		Tags:        req.Tags,
		IsFeatured:  req.IsFeatured,
		IsActive:    req.IsActive,
	})
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.OK(w, "product updated successfully", dto.ToProductView(p))
}

func (h *ProductsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.Err(w, r, err)
		return
	}
	response.OK(w, "product deleted successfully", nil)
}
