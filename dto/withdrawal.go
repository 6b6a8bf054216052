package dto

type CreateWithdrawalRequest struct {
	Amount        int64  `json:"amount" binding:"required,min=1"`
	Bank          string `json:"bank" binding:"required"`
	AccountNumber string `json:"accountNumber" binding:"required"`
	AccountName   string `json:"accountName" binding:"required"`
}

type UpdateWithdrawalStatusRequest struct {
	ID     string `json:"id" binding:"required"`
	Status string `json:"status" binding:"required,withdrawstatus"`
	Reason string `json:"reason"`
}

type BankAccountResponse struct {
	Bank          string `json:"bank"`
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
}

type StoreResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

type AttachmentResponse struct {
	ID        string `json:"id"`
	ImageURL  string `json:"imageUrl"`
	CreatedAt string `json:"createdAt"`
}

type WithdrawalResponse struct {
	ID            string              `json:"id"`
	Amount        int64               `json:"amount"`
	Status        string              `json:"status"`
	CreatedAt     string              `json:"createdAt"`
	CreatedAtText string              `json:"createdAtText"`
	DeclineReason string              `json:"declineReason,omitempty"`
	BankAccount   BankAccountResponse `json:"bankAccount"`
	Store         StoreResponse       `json:"store"`
	Attachment    *AttachmentResponse `json:"attachment,omitempty"`
	// Rincian biaya untuk popup admin.
	Tax             int64  `json:"tax"`
	TransferFee     int64  `json:"transferFee"`
	NetPayout       int64  `json:"netPayout"`
	AmountText      string `json:"amountText"`
	TaxText         string `json:"taxText"`
	TransferFeeText string `json:"transferFeeText"`
	NetPayoutText   string `json:"netPayoutText"`
}

type WithdrawalFilter struct {
	Status string `form:"status"`
	Name   string `form:"name"`
	Page   int    `form:"page,default=0"`
	Limit  int    `form:"limit,default=10"`
}
