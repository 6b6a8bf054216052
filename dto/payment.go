package dto

type PaymentConfirmationResponse struct {
	OrderID      string `json:"orderId"`
	TitleProduct string `json:"titleProduct"`
	Price        int64  `json:"price"`
	// TagPrice adalah 3 digit kode unik yang harus ikut ditransfer.
	TagPrice    string `json:"tagPrice"`
	Total       int64  `json:"total"`
	TotalText   string `json:"totalText"`
	Payment     string `json:"payment"`
	NoPayment   string `json:"noPayment"`
	AccountName string `json:"accountName"`
}
