package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/1bintangnaufal/lakoe-personal/config"
	"github.com/1bintangnaufal/lakoe-personal/dto"
	"github.com/1bintangnaufal/lakoe-personal/models"
	"github.com/1bintangnaufal/lakoe-personal/response"
	"github.com/1bintangnaufal/lakoe-personal/services"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

const withdrawalListCacheKey = "withdrawals:all"

// removeDiacritics menghapus tanda diakritik agar filter nama tidak peka aksen.
func removeDiacritics(s string) string {
	t := norm.NFD.String(s)
	var b strings.Builder
	for _, r := range t {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

type WithdrawalController struct {
	DB      *gorm.DB
	Redis   *redis.Client
	Cloud   *cloudinary.Cloudinary
	Melody  *melody.Melody
	Service *services.WithdrawalService
}

func NewWithdrawalController(db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody, service *services.WithdrawalService) WithdrawalController {
	return WithdrawalController{
		DB:      db,
		Redis:   redisCli,
		Cloud:   cld,
		Melody:  m,
		Service: service,
	}
}

// bearerAuth membaca header Authorization dan mengembalikan userID beserta role.
func bearerAuth(c *gin.Context) (string, int, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", 0, fmt.Errorf("header Authorization kosong")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	return services.GetUserIDFromToken(tokenString)
}

// convertToWithdrawalResponse melengkapi satu penarikan dengan rincian biaya
// dan teks terformat untuk popup admin.
func convertToWithdrawalResponse(w models.Withdrawal) dto.WithdrawalResponse {
	fee, err := services.ComputeWithdrawalFee(w.Amount)
	if err != nil {
		log.Printf("Jumlah penarikan %s tidak valid: %v", w.ID, err)
	}

	resp := dto.WithdrawalResponse{
		ID:            w.ID,
		Amount:        w.Amount,
		Status:        string(w.Status),
		CreatedAt:     w.CreatedAt.Format(time.RFC3339),
		CreatedAtText: services.FormatTanggal(w.CreatedAt),
		DeclineReason: w.DeclineReason,
		BankAccount: dto.BankAccountResponse{
			Bank:          w.BankAccount.Bank,
			AccountNumber: w.BankAccount.AccountNumber,
			AccountName:   w.BankAccount.AccountName,
		},
		Store: dto.StoreResponse{
			ID:   w.Store.ID,
			Name: w.Store.Name,
			Logo: w.Store.Logo,
		},
		Tax:             fee.Tax,
		TransferFee:     fee.TransferFee,
		NetPayout:       fee.NetPayout,
		AmountText:      services.FormatRupiah(w.Amount),
		TaxText:         services.FormatRupiah(fee.Tax),
		TransferFeeText: services.FormatRupiah(fee.TransferFee),
		NetPayoutText:   services.FormatRupiah(fee.NetPayout),
	}

	if w.Attachment != nil {
		resp.Attachment = &dto.AttachmentResponse{
			ID:        w.Attachment.ID,
			ImageURL:  w.Attachment.ImageURL,
			CreatedAt: w.Attachment.CreatedAt.Format(time.RFC3339),
		}
	}

	return resp
}

// adminGate memeriksa token dan role untuk halaman admin. Bukan admin diarahkan
// ke halamannya masing-masing, mengikuti alur dashboard lama.
func (w WithdrawalController) adminGate(c *gin.Context) bool {
	_, role, err := bearerAuth(c)
	if err != nil {
		c.Redirect(http.StatusFound, "/auth/login")
		return false
	}

	switch role {
	case models.RoleAdmin:
		return true
	case models.RoleStore:
		c.Redirect(http.StatusFound, "/dashboard")
	case models.RoleBuyer:
		c.Redirect(http.StatusFound, "/checkout")
	default:
		c.Redirect(http.StatusFound, "/logout")
	}
	return false
}

// listWithdrawals mengambil daftar penarikan dari cache atau database.
// Yang dicache adalah bentuk response-nya, karena model menyembunyikan relasi
// dari JSON sehingga tidak utuh bila bolak-balik lewat Redis.
func (w WithdrawalController) listWithdrawals(c *gin.Context) ([]dto.WithdrawalResponse, error) {
	var responses []dto.WithdrawalResponse

	if err := services.GetFromRedis(config.Ctx, w.Redis, withdrawalListCacheKey, &responses); err == nil && len(responses) > 0 {
		return responses, nil
	}

	withdrawals, err := w.Service.ListWithdrawals(c.Request.Context())
	if err != nil {
		return nil, err
	}

	for _, withdrawal := range withdrawals {
		responses = append(responses, convertToWithdrawalResponse(withdrawal))
	}

	if err := services.SetToRedis(config.Ctx, w.Redis, withdrawalListCacheKey, responses, 10*time.Minute); err != nil {
		log.Printf("Gagal menyimpan daftar penarikan ke Redis: %v", err)
	}

	return responses, nil
}

func (w WithdrawalController) invalidateListCache() {
	if err := services.DeleteFromRedis(config.Ctx, w.Redis, withdrawalListCacheKey); err != nil {
		log.Printf("Gagal menghapus cache daftar penarikan: %v", err)
	}
}

// GetAdminWithdrawals menampilkan daftar penarikan untuk dashboard admin
// (dipakai halaman adminProcessing dan adminSuccess).
func (w WithdrawalController) GetAdminWithdrawals(c *gin.Context) {
	if !w.adminGate(c) {
		return
	}

	var filter dto.WithdrawalFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Parameter query tidak valid")
		return
	}

	responses, err := w.listWithdrawals(c)
	if err != nil {
		response.ServerError(c)
		return
	}

	if filter.Status != "" {
		var filtered []dto.WithdrawalResponse
		for _, resp := range responses {
			if resp.Status == strings.ToUpper(filter.Status) {
				filtered = append(filtered, resp)
			}
		}
		responses = filtered
	}

	if filter.Name != "" {
		normalizedFilter := removeDiacritics(strings.ToLower(strings.ReplaceAll(filter.Name, " ", "")))
		var filtered []dto.WithdrawalResponse
		for _, resp := range responses {
			normalizedName := removeDiacritics(strings.ToLower(strings.ReplaceAll(resp.BankAccount.AccountName, " ", "")))
			normalizedStore := removeDiacritics(strings.ToLower(strings.ReplaceAll(resp.Store.Name, " ", "")))
			if strings.Contains(normalizedName, normalizedFilter) || strings.Contains(normalizedStore, normalizedFilter) {
				filtered = append(filtered, resp)
			}
		}
		responses = filtered
	}

	page := filter.Page
	if page < 0 {
		page = 0
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}

	total := len(responses)
	start := page * limit
	end := start + limit

	if start >= total {
		responses = []dto.WithdrawalResponse{}
	} else if end > total {
		responses = responses[start:]
	} else {
		responses = responses[start:end]
	}

	response.Success(c, gin.H{
		"data": responses,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}

// CreateWithdrawal membuat permintaan penarikan baru milik toko yang sedang login.
func (w WithdrawalController) CreateWithdrawal(c *gin.Context) {
	userID, role, err := bearerAuth(c)
	if err != nil {
		response.Unauthorized(c)
		return
	}
	if role != models.RoleStore {
		response.Forbidden(c)
		return
	}

	var input dto.CreateWithdrawalRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Data penarikan tidak valid")
		return
	}

	var store models.Store
	if err := w.DB.Where("user_id = ?", userID).First(&store).Error; err != nil {
		response.NotFound(c)
		return
	}

	withdrawal, err := w.Service.CreateWithdrawal(c.Request.Context(), services.CreateWithdrawalInput{
		StoreID:       store.ID,
		Amount:        input.Amount,
		Bank:          input.Bank,
		AccountNumber: input.AccountNumber,
		AccountName:   input.AccountName,
	})
	switch {
	case errors.Is(err, services.ErrInvalidAmount), errors.Is(err, services.ErrMissingField):
		response.ValidationError(c, err.Error())
		return
	case errors.Is(err, services.ErrInsufficientBalance):
		response.ValidationError(c, err.Error())
		return
	case err != nil:
		response.ServerError(c)
		return
	}

	w.invalidateListCache()

	response.Success(c, gin.H{
		"mess": "Permintaan penarikan berhasil dibuat",
		"data": convertToWithdrawalResponse(*withdrawal),
	})
}

// GetWithdrawal menampilkan detail satu penarikan.
func (w WithdrawalController) GetWithdrawal(c *gin.Context) {
	userID, role, err := bearerAuth(c)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	withdrawal, err := w.Service.GetWithdrawal(c.Request.Context(), c.Param("id"))
	if errors.Is(err, services.ErrWithdrawalNotFound) {
		response.NotFound(c)
		return
	}
	if err != nil {
		response.ServerError(c)
		return
	}

	// Toko hanya boleh melihat penarikannya sendiri.
	if role == models.RoleStore && withdrawal.Store.UserID != userID {
		response.Forbidden(c)
		return
	}
	if role == models.RoleBuyer {
		response.Forbidden(c)
		return
	}

	response.Success(c, convertToWithdrawalResponse(*withdrawal))
}

// UpdateWithdrawalStatus memindahkan status penarikan atas aksi admin.
func (w WithdrawalController) UpdateWithdrawalStatus(c *gin.Context) {
	_, role, err := bearerAuth(c)
	if err != nil {
		response.Unauthorized(c)
		return
	}
	if role != models.RoleAdmin {
		response.Forbidden(c)
		return
	}

	var input dto.UpdateWithdrawalStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Data update status tidak valid")
		return
	}

	withdrawal, err := w.Service.UpdateStatus(c.Request.Context(), input.ID, models.WithdrawalStatus(strings.ToUpper(input.Status)), input.Reason)

	var invalidTransition *models.InvalidTransitionError
	switch {
	case errors.Is(err, services.ErrWithdrawalNotFound):
		response.NotFound(c)
		return
	case errors.Is(err, services.ErrUnknownStatus):
		response.ValidationError(c, err.Error())
		return
	case errors.As(err, &invalidTransition):
		response.Conflict(c, invalidTransition.Error())
		return
	case err != nil:
		response.ServerError(c)
		return
	}

	w.invalidateListCache()

	if w.Melody != nil {
		msg := fmt.Sprintf("Penarikan %s kini berstatus %s", withdrawal.ID, withdrawal.Status)
		if err := w.Melody.Broadcast([]byte(msg)); err != nil {
			log.Printf("Gagal broadcast perubahan status: %v", err)
		}
	}

	response.Success(c, gin.H{
		"mess": "Status penarikan berhasil diperbarui",
		"data": convertToWithdrawalResponse(*withdrawal),
	})
}

// CreateWithdrawalAttachment mengunggah bukti transfer lalu mencatatnya
// pada penarikan. Status penarikan tidak diubah dari sini.
func (w WithdrawalController) CreateWithdrawalAttachment(c *gin.Context) {
	_, role, err := bearerAuth(c)
	if err != nil {
		response.Unauthorized(c)
		return
	}
	if role != models.RoleAdmin {
		response.Forbidden(c)
		return
	}

	withdrawalID := c.PostForm("withdrawId")
	fileHeader, err := c.FormFile("img")
	if err != nil || withdrawalID == "" {
		response.ValidationError(c, "Form harus menyertakan file img dan withdrawId")
		return
	}

	imageURL, err := services.UploadImage(c.Request.Context(), w.Cloud, fileHeader, "lakoe/bukti-transfer")
	if err != nil {
		log.Printf("Upload bukti transfer gagal: %v", err)
		response.BadGateway(c, "Upload gambar ke penyimpanan gagal")
		return
	}

	attachment, err := w.Service.CreateAttachment(c.Request.Context(), imageURL, withdrawalID)
	switch {
	case errors.Is(err, services.ErrMissingField):
		response.ValidationError(c, err.Error())
		return
	case errors.Is(err, services.ErrWithdrawalNotFound):
		response.NotFound(c)
		return
	case errors.Is(err, services.ErrAttachmentPending):
		response.Conflict(c, err.Error())
		return
	case err != nil:
		response.ServerError(c)
		return
	}

	w.invalidateListCache()

	response.Success(c, gin.H{
		"mess": "Bukti transfer berhasil diunggah",
		"data": dto.AttachmentResponse{
			ID:        attachment.ID,
			ImageURL:  attachment.ImageURL,
			CreatedAt: attachment.CreatedAt.Format(time.RFC3339),
		},
	})
}
