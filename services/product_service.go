package services

import (
	"context"
	"errors"
	"regexp"
	"sort"
	"strings"

	"github.com/1bintangnaufal/lakoe-personal/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
)

// ErrProductNotFound dikembalikan saat produk tidak ditemukan.
var ErrProductNotFound = errors.New("produk tidak ditemukan")

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify mengubah nama produk menjadi slug URL: transliterasi ke ASCII,
// huruf kecil, non-alfanumerik jadi tanda hubung.
func Slugify(name string) string {
	s := unidecode.Unidecode(name)
	s = strings.ToLower(s)
	s = slugStrip.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// CreateProduct menyimpan produk baru milik satu toko. Slug diturunkan dari nama
// bila tidak dikirim dari form.
func (s *ProductService) CreateProduct(ctx context.Context, product *models.Product) error {
	if product.Slug == "" {
		product.Slug = Slugify(product.Name)
	}
	return s.db.WithContext(ctx).Create(product).Error
}

// ListProducts mengembalikan produk aktif, yang terbaru lebih dulu.
func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := s.db.WithContext(ctx).
		Preload("Store").
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// SearchProducts mencari produk berdasarkan nama. Hasil persis (substring) dikembalikan
// sebagai daftar produk; bila kosong, nama terdekat dikembalikan sebagai saran,
// diurutkan berdasarkan jarak levenshtein terhadap kata kunci.
func (s *ProductService) SearchProducts(ctx context.Context, keyword string) ([]models.Product, []string, error) {
	products, err := s.ListProducts(ctx)
	if err != nil {
		return nil, nil, err
	}

	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return products, nil, nil
	}

	var matched []models.Product
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
		if strings.Contains(strings.ToLower(p.Name), keyword) {
			matched = append(matched, p)
		}
	}

	if len(matched) > 0 || len(names) == 0 {
		return matched, nil, nil
	}

	cm := closestmatch.New(names, []int{2, 3, 4})
	suggestions := cm.ClosestN(keyword, 3)

	sort.Slice(suggestions, func(i, j int) bool {
		di := levenshtein.DistanceForStrings([]rune(keyword), []rune(strings.ToLower(suggestions[i])), levenshtein.DefaultOptions)
		dj := levenshtein.DistanceForStrings([]rune(keyword), []rune(strings.ToLower(suggestions[j])), levenshtein.DefaultOptions)
		return di < dj
	})

	return nil, suggestions, nil
}
