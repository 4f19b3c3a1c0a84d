package handler

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/xuri/excelize/v2"

	transactiondomain "fintrack-go/internal/domain/transaction"
	"fintrack-go/internal/transport/httpserver/middleware"
)

const defaultTransactionLimit = 50

type createTransactionRequest struct {
	CategoryID  *uint   `json:"category_id"`
	BudgetID    *uint   `json:"budget_id"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
}

// optionalID tells an absent field apart from an explicit null: null clears
// the link, a number relinks, absence leaves it untouched.
type optionalID struct {
	Set   bool
	Value *uint
}

func (o *optionalID) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var id uint
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	o.Value = &id
	return nil
}

type updateTransactionRequest struct {
	CategoryID  optionalID `json:"category_id"`
	BudgetID    optionalID `json:"budget_id"`
	Amount      *float64   `json:"amount"`
	Date        *string    `json:"date"`
	Description *string    `json:"description"`
}

type transactionResponse struct {
	ID          uint    `json:"id"`
	CategoryID  *uint   `json:"category_id"`
	BudgetID    *uint   `json:"budget_id"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
}

type transactionListResponse struct {
	Transactions []transactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
}

func toTransactionResponse(t transactiondomain.Transaction) transactionResponse {
	return transactionResponse{
		ID:          t.ID,
		CategoryID:  t.CategoryID,
		BudgetID:    t.BudgetID,
		Amount:      t.Amount,
		Type:        string(t.Type),
		Date:        formatDate(t.Date),
		Description: t.Description,
	}
}

func (h *Handlers) listTransactionsFor(w http.ResponseWriter, r *http.Request, userID uint) {
	query := r.URL.Query()

	from, err := parseDateParam(query.Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "from must be YYYY-MM-DD")
		return
	}
	to, err := parseDateParam(query.Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "to must be YYYY-MM-DD")
		return
	}
	limit, err := parseIntParam(query.Get("limit"), defaultTransactionLimit)
	if err != nil {
		writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
		return
	}
	offset, err := parseIntParam(query.Get("offset"), 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "offset must be a non-negative integer")
		return
	}

	txType := transactiondomain.Type(strings.TrimSpace(query.Get("type")))
	if txType != "" && txType != transactiondomain.TypeIncome && txType != transactiondomain.TypeExpense {
		writeError(w, http.StatusBadRequest, "type must be income or expense")
		return
	}

	items, total, err := h.Transactions.List(r.Context(), userID, transactiondomain.ListFilter{
		From:   from,
		To:     to,
		Type:   txType,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		h.log.InternalError("transaction.list failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	out := make([]transactionResponse, 0, len(items))
	for _, t := range items {
		out = append(out, toTransactionResponse(t))
	}

	writeData(w, http.StatusOK, transactionListResponse{Transactions: out, Total: total})
}

func (h *Handlers) ListTransactions(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	h.listTransactionsFor(w, r, userID)
}

// ListTransactionsByUser serves the path-scoped variant with the same
// caller-match rule as budgets.
func (h *Handlers) ListTransactionsByUser(w http.ResponseWriter, r *http.Request) {
	callerID, _ := middleware.UserIDFromContext(r.Context())

	pathID, err := parseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if pathID != callerID {
		h.log.Warn("transaction.list: cross-user access", "caller_id", callerID, "path_id", pathID)
		writeError(w, http.StatusForbidden, "cannot access another user's transactions")
		return
	}

	h.listTransactionsFor(w, r, callerID)
}

func (h *Handlers) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req createTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	date, err := parseDateRequired(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	created, err := h.Transactions.Create(r.Context(), transactiondomain.CreateInput{
		UserID:      userID,
		CategoryID:  req.CategoryID,
		BudgetID:    req.BudgetID,
		Amount:      req.Amount,
		Type:        transactiondomain.Type(req.Type),
		Date:        date,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, transactiondomain.ErrCategoryNotFound):
			writeError(w, http.StatusNotFound, "category not found")
		case errors.Is(err, transactiondomain.ErrBudgetNotFound):
			writeError(w, http.StatusNotFound, "budget not found")
		case isValidation(err):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.log.InternalError("transaction.create failed", err, "user_id", userID)
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeData(w, http.StatusCreated, toTransactionResponse(*created))
}

func (h *Handlers) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	transactionID, err := parseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req updateTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	input := transactiondomain.UpdateInput{
		CategoryID:    req.CategoryID.Value,
		ClearCategory: req.CategoryID.Set && req.CategoryID.Value == nil,
		BudgetID:      req.BudgetID.Value,
		ClearBudget:   req.BudgetID.Set && req.BudgetID.Value == nil,
		Amount:        req.Amount,
		Description:   req.Description,
	}
	if req.Date != nil {
		date, err := parseDateRequired(*req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		input.Date = &date
	}

	updated, err := h.Transactions.Update(r.Context(), userID, transactionID, input)
	if err != nil {
		switch {
		case errors.Is(err, transactiondomain.ErrTransactionNotFound):
			writeError(w, http.StatusNotFound, "transaction not found")
		case errors.Is(err, transactiondomain.ErrCategoryNotFound):
			writeError(w, http.StatusNotFound, "category not found")
		case errors.Is(err, transactiondomain.ErrBudgetNotFound):
			writeError(w, http.StatusNotFound, "budget not found")
		case isValidation(err):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.log.InternalError("transaction.update failed", err, "user_id", userID, "transaction_id", transactionID)
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeData(w, http.StatusOK, toTransactionResponse(*updated))
}

func (h *Handlers) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	transactionID, err := parseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Transactions.Delete(r.Context(), userID, transactionID); err != nil {
		if errors.Is(err, transactiondomain.ErrTransactionNotFound) {
			writeError(w, http.StatusNotFound, "transaction not found")
			return
		}
		h.log.InternalError("transaction.delete failed", err, "user_id", userID, "transaction_id", transactionID)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeMessage(w, http.StatusOK, "transaction deleted")
}

var exportHeader = []string{"ID", "Type", "Amount", "Date", "Category ID", "Budget ID", "Description"}

// ExportTransactions streams the full ledger as a CSV or XLSX attachment.
func (h *Handlers) ExportTransactions(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "xlsx" {
		writeError(w, http.StatusBadRequest, "format must be csv or xlsx")
		return
	}

	items, err := h.Transactions.Export(r.Context(), userID)
	if err != nil {
		h.log.InternalError("transaction.export failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	filename := fmt.Sprintf("transactions_%s.%s", time.Now().UTC().Format("20060102"), format)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if format == "csv" {
		h.exportCSV(w, items)
		return
	}
	h.exportXLSX(w, items)
}

func (h *Handlers) exportCSV(w http.ResponseWriter, items []transactiondomain.Transaction) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")

	cw := csv.NewWriter(w)
	_ = cw.Write(exportHeader)
	for _, t := range items {
		_ = cw.Write(exportRow(t))
	}
	cw.Flush()

	if err := cw.Error(); err != nil {
		h.log.InternalError("transaction.export: csv write failed", err)
	}
}

func (h *Handlers) exportXLSX(w http.ResponseWriter, items []transactiondomain.Transaction) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Transactions"
	index, err := f.NewSheet(sheet)
	if err != nil {
		h.log.InternalError("transaction.export: create sheet failed", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	for col, title := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(sheet, cell, title)
	}
	for row, t := range items {
		for col, value := range exportRow(t) {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, value)
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(w); err != nil {
		h.log.InternalError("transaction.export: xlsx write failed", err)
	}
}

func exportRow(t transactiondomain.Transaction) []string {
	return []string{
		strconv.FormatUint(uint64(t.ID), 10),
		string(t.Type),
		strconv.FormatFloat(t.Amount, 'f', 2, 64),
		formatDate(t.Date),
		formatOptionalID(t.CategoryID),
		formatOptionalID(t.BudgetID),
		t.Description,
	}
}

func formatOptionalID(id *uint) string {
	if id == nil {
		return ""
	}
	return strconv.FormatUint(uint64(*id), 10)
}
