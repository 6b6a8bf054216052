package controllers

import (
	"fmt"
	"log"
	"strconv"

	"github.com/1bintangnaufal/lakoe-personal/dto"
	"github.com/1bintangnaufal/lakoe-personal/models"
	"github.com/1bintangnaufal/lakoe-personal/response"
	"github.com/1bintangnaufal/lakoe-personal/services"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProductController struct {
	DB      *gorm.DB
	Cloud   *cloudinary.Cloudinary
	Service *services.ProductService
}

func NewProductController(db *gorm.DB, cld *cloudinary.Cloudinary, service *services.ProductService) ProductController {
	return ProductController{
		DB:      db,
		Cloud:   cld,
		Service: service,
	}
}

// parseFormInt membaca field angka bulat non-negatif dari form dan menolak
// nilai kosong atau rusak alih-alih diam-diam menghasilkan nol.
func parseFormInt(c *gin.Context, field string) (int, error) {
	raw := c.PostForm(field)
	if raw == "" {
		return 0, fmt.Errorf("field %s wajib diisi", field)
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("field %s harus berupa angka non-negatif", field)
	}
	return value, nil
}

func parseFormInt64(c *gin.Context, field string) (int64, error) {
	raw := c.PostForm(field)
	if raw == "" {
		return 0, fmt.Errorf("field %s wajib diisi", field)
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("field %s harus berupa angka non-negatif", field)
	}
	return value, nil
}

func parseFormFloat(c *gin.Context, field string) (float64, error) {
	raw := c.PostForm(field)
	if raw == "" {
		return 0, fmt.Errorf("field %s wajib diisi", field)
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("field %s harus berupa angka non-negatif", field)
	}
	return value, nil
}

func convertToProductResponse(p models.Product) dto.ProductResponse {
	resp := dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Slug:         p.Slug,
		Description:  p.Description,
		Category:     p.Category,
		Price:        p.Price,
		PriceText:    services.FormatRupiah(p.Price),
		Stock:        p.Stock,
		Sku:          p.Sku,
		MinimumOrder: p.MinimumOrder,
		Weight:       p.Weight,
		Length:       p.Length,
		Width:        p.Width,
		Height:       p.Height,
		URL:          p.URL,
		URL2:         p.URL2,
	}

	if p.Store.ID != "" {
		resp.Store = &dto.StoreResponse{
			ID:   p.Store.ID,
			Name: p.Store.Name,
			Logo: p.Store.Logo,
		}
	}

	return resp
}

// CreateProduct menerima form multipart dari halaman tambah produk dan
// menyimpan produk baru milik toko yang sedang login.
func (p ProductController) CreateProduct(c *gin.Context) {
	userID, role, err := bearerAuth(c)
	if err != nil {
		response.Unauthorized(c)
		return
	}
	if role != models.RoleStore {
		response.Forbidden(c)
		return
	}

	var store models.Store
	if err := p.DB.Where("user_id = ?", userID).First(&store).Error; err != nil {
		response.NotFound(c)
		return
	}

	name := c.PostForm("name")
	sku := c.PostForm("sku")
	category := c.PostForm("category")
	if name == "" || sku == "" || category == "" {
		response.ValidationError(c, "Field name, sku, dan category wajib diisi")
		return
	}

	price, err := parseFormInt64(c, "price")
	if err != nil {
		response.ValidationError(c, err.Error())
		return
	}
	stock, err := parseFormInt(c, "stock")
	if err != nil {
		response.ValidationError(c, err.Error())
		return
	}
	minOrder, err := parseFormInt(c, "min_order")
	if err != nil {
		response.ValidationError(c, err.Error())
		return
	}
	weight, err := parseFormInt(c, "weight")
	if err != nil {
		response.ValidationError(c, err.Error())
		return
	}
	length, err := parseFormFloat(c, "length")
	if err != nil {
		response.ValidationError(c, err.Error())
		return
	}
	width, err := parseFormFloat(c, "width")
	if err != nil {
		response.ValidationError(c, err.Error())
		return
	}
	height, err := parseFormFloat(c, "height")
	if err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	mainPhoto, err := c.FormFile("mainPhoto")
	if err != nil {
		response.ValidationError(c, "Foto utama produk wajib diunggah")
		return
	}

	mainURL, err := services.UploadImage(c.Request.Context(), p.Cloud, mainPhoto, "lakoe/produk")
	if err != nil {
		log.Printf("Upload foto produk gagal: %v", err)
		response.BadGateway(c, "Upload gambar ke penyimpanan gagal")
		return
	}

	var secondURL string
	if photo2, err := c.FormFile("photo2"); err == nil {
		secondURL, err = services.UploadImage(c.Request.Context(), p.Cloud, photo2, "lakoe/produk")
		if err != nil {
			log.Printf("Upload foto kedua gagal: %v", err)
			response.BadGateway(c, "Upload gambar ke penyimpanan gagal")
			return
		}
	}

	product := models.Product{
		StoreID:      store.ID,
		Name:         name,
		Slug:         c.PostForm("url"),
		Description:  c.PostForm("description"),
		Category:     category,
		Price:        price,
		Stock:        stock,
		Sku:          sku,
		MinimumOrder: minOrder,
		Weight:       weight,
		Length:       length,
		Width:        width,
		Height:       height,
		URL:          mainURL,
		URL2:         secondURL,
	}

	if err := p.Service.CreateProduct(c.Request.Context(), &product); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{
		"mess": "Produk berhasil ditambahkan",
		"data": convertToProductResponse(product),
	})
}

// GetProducts menampilkan semua produk aktif.
func (p ProductController) GetProducts(c *gin.Context) {
	products, err := p.Service.ListProducts(c.Request.Context())
	if err != nil {
		response.ServerError(c)
		return
	}

	var responses []dto.ProductResponse
	for _, product := range products {
		responses = append(responses, convertToProductResponse(product))
	}

	response.Success(c, responses)
}

// SearchProducts mencari produk berdasarkan nama; bila tidak ada yang cocok,
// mengembalikan saran nama terdekat.
func (p ProductController) SearchProducts(c *gin.Context) {
	keyword := c.Query("q")

	products, suggestions, err := p.Service.SearchProducts(c.Request.Context(), keyword)
	if err != nil {
		response.ServerError(c)
		return
	}

	result := dto.ProductSearchResponse{Suggestions: suggestions}
	for _, product := range products {
		result.Products = append(result.Products, convertToProductResponse(product))
	}

	response.Success(c, result)
}
