package mapping

import (
	"database/sql"

	"github.com/SscSPs/bizhub_pricing/internal/core/domain"
	"github.com/SscSPs/bizhub_pricing/internal/models"
)

// ToModelDocumentLine converts a domain DocumentLine belonging to documentID.
func ToModelDocumentLine(documentID string, d domain.DocumentLine) models.DocumentLine {
	m := models.DocumentLine{
		LineID:      d.LineID,
		DocumentID:  documentID,
		Position:    d.Position,
		Description: d.Description,
		Quantity:    d.Quantity,
		UnitPrice:   d.UnitPrice,
		VATRate:     d.VATRate,
		LineTotal:   d.LineTotal,
		Degraded:    d.Degraded,
	}
	if d.CatalogItemID != nil {
		m.CatalogItemID = sql.NullString{String: *d.CatalogItemID, Valid: true}
	}
	return m
}

// ToDomainDocumentLine converts a model DocumentLine.
func ToDomainDocumentLine(m models.DocumentLine) domain.DocumentLine {
	d := domain.DocumentLine{
		LineID:      m.LineID,
		Position:    m.Position,
		Description: m.Description,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		VATRate:     m.VATRate,
		LineTotal:   m.LineTotal,
		Degraded:    m.Degraded,
	}
	if m.CatalogItemID.Valid {
		id := m.CatalogItemID.String
		d.CatalogItemID = &id
	}
	return d
}

// ToDomainDocumentLineSlice converts a slice of model DocumentLines.
func ToDomainDocumentLineSlice(ms []models.DocumentLine) []domain.DocumentLine {
	ds := make([]domain.DocumentLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDocumentLine(m)
	}
	return ds
}

// ToModelInvoice converts a domain Invoice (without its lines).
func ToModelInvoice(d domain.Invoice) models.Invoice {
	m := models.Invoice{
		InvoiceID:          d.InvoiceID,
		Number:             d.Number,
		ClientName:         d.ClientName,
		DocumentCurrencyID: d.DocumentCurrencyID,
		Status:             string(d.Status),
		IssueDate:          d.IssueDate,
		Notes:              d.Notes,
		Total:              d.Total,
		Degraded:           d.Degraded,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
	if d.DueDate != nil {
		m.DueDate = sql.NullTime{Time: *d.DueDate, Valid: true}
	}
	return m
}

// ToDomainInvoice converts a model Invoice and its lines.
func ToDomainInvoice(m models.Invoice, lines []models.DocumentLine) domain.Invoice {
	d := domain.Invoice{
		InvoiceID:          m.InvoiceID,
		Number:             m.Number,
		ClientName:         m.ClientName,
		DocumentCurrencyID: m.DocumentCurrencyID,
		Status:             domain.InvoiceStatus(m.Status),
		IssueDate:          m.IssueDate,
		Notes:              m.Notes,
		Lines:              ToDomainDocumentLineSlice(lines),
		Total:              m.Total,
		Degraded:           m.Degraded,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
	if m.DueDate.Valid {
		due := m.DueDate.Time
		d.DueDate = &due
	}
	return d
}

// ToModelPosOrder converts a domain PosOrder (without its lines).
func ToModelPosOrder(d domain.PosOrder) models.PosOrder {
	return models.PosOrder{
		PosOrderID:         d.PosOrderID,
		DocumentCurrencyID: d.DocumentCurrencyID,
		PaymentMethod:      string(d.PaymentMethod),
		Total:              d.Total,
		Degraded:           d.Degraded,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPosOrder converts a model PosOrder and its lines.
func ToDomainPosOrder(m models.PosOrder, lines []models.DocumentLine) domain.PosOrder {
	return domain.PosOrder{
		PosOrderID:         m.PosOrderID,
		DocumentCurrencyID: m.DocumentCurrencyID,
		PaymentMethod:      domain.PaymentMethod(m.PaymentMethod),
		Lines:              ToDomainDocumentLineSlice(lines),
		Total:              m.Total,
		Degraded:           m.Degraded,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}
