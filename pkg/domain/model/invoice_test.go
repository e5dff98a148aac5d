package model_test

import (
	"testing"

	"github.com/careledger/careledger/pkg/domain/model"
	"github.com/careledger/careledger/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func TestNewInvoice(t *testing.T) {
	t.Run("Valid invoice", func(t *testing.T) {
		inv, err := model.NewInvoice(7, "alice", &model.CreateInvoiceRequest{
			ProjectName: "Hospice",
			ClientName:  "Acme Care",
			AmountDue:   120.5,
			DueDate:     "2026-02-01",
		})
		gt.NoError(t, err).Required()
		gt.Equal(t, types.InvoiceID(7), inv.ID)
		gt.Equal(t, types.InvoiceStatusPending, inv.Status)
		gt.Equal(t, types.Principal("alice"), inv.Owner)
		gt.True(t, inv.HasOwner())
		gt.False(t, inv.IsLOCReceivable())
	})

	t.Run("Missing client name", func(t *testing.T) {
		_, err := model.NewInvoice(1, "alice", &model.CreateInvoiceRequest{ProjectName: "Hospice"})
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagInvalid))
	})

	t.Run("Negative amount", func(t *testing.T) {
		_, err := model.NewInvoice(1, "alice", &model.CreateInvoiceRequest{
			ProjectName: "Hospice",
			ClientName:  "Acme",
			AmountDue:   -1,
		})
		gt.Error(t, err)
	})

	t.Run("Zero ID", func(t *testing.T) {
		_, err := model.NewInvoice(0, "alice", &model.CreateInvoiceRequest{ProjectName: "a", ClientName: "b"})
		gt.Error(t, err)
	})
}

func TestLOCReceivable(t *testing.T) {
	inquiry := model.DefaultLOCInquiry()
	inv, err := model.NewInvoice(1, "", inquiry.ToInvoiceRequest("2026-02-01", "2026-02-02"))
	gt.NoError(t, err).Required()
	gt.True(t, inv.IsLOCReceivable())
	gt.False(t, inv.HasOwner())
	gt.Equal(t, "01/31/2026", inv.DueDate)
	gt.Equal(t, inquiry.Payer, inv.PayerSource)

	inv.MarkPaid()
	gt.False(t, inv.IsLOCReceivable())
}

func TestLOCInquiryDueDate(t *testing.T) {
	tests := []struct {
		period   string
		expected string
	}{
		{"01/02/2026–01/31/2026", "01/31/2026"},
		{"Jan 1 - Jan 31", "Jan 31"},
		{"January 2026", "January 2026"},
	}
	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			q := &model.LOCInquiry{StatementPeriod: tt.period}
			gt.Equal(t, tt.expected, q.DueDate())
		})
	}
}

func TestNewAuthContext(t *testing.T) {
	gt.Equal(t, types.UserRoleGuest, model.NewAuthContext("", "").Role)
	gt.Equal(t, types.UserRoleUser, model.NewAuthContext("alice", "").Role)
	gt.True(t, model.NewAuthContext("root", types.UserRoleAdmin).IsAdmin())
}
