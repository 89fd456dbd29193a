package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jrfmotorparts/pos-backend/internal/domain"
	"github.com/jrfmotorparts/pos-backend/internal/domain/repository"
)

// ReceiptLine línea del recibo con el nombre del repuesto resuelto.
type ReceiptLine struct {
	PartName    string
	Quantity    int64
	PriceAtSale decimal.Decimal
	Subtotal    decimal.Decimal
}

// ReceiptData datos completos para renderizar el recibo de una venta.
type ReceiptData struct {
	StoreName     string
	Currency      string
	ReceiptNumber string
	SaleDate      time.Time
	StaffName     string
	CustomerName  string // vacío = venta de mostrador
	PaymentMethod string
	Lines         []ReceiptLine
	Total         decimal.Decimal
}

// ReceiptGenerator renderiza el recibo (implementado con Maroto en infraestructura).
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, data *ReceiptData) ([]byte, error)
}

// ReceiptUseCase genera el PDF del recibo de una venta confirmada.
type ReceiptUseCase struct {
	saleRepo     repository.SaleRepository
	partRepo     repository.PartRepository
	staffRepo    repository.StaffRepository
	customerRepo repository.CustomerRepository
	settings     SettingsReader
	generator    ReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso inyectando sus dependencias.
func NewReceiptUseCase(
	saleRepo repository.SaleRepository,
	partRepo repository.PartRepository,
	staffRepo repository.StaffRepository,
	customerRepo repository.CustomerRepository,
	settings SettingsReader,
	generator ReceiptGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		saleRepo:     saleRepo,
		partRepo:     partRepo,
		staffRepo:    staffRepo,
		customerRepo: customerRepo,
		settings:     settings,
		generator:    generator,
	}
}

// DownloadReceiptPDF arma los datos del recibo y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si la venta no existe.
func (uc *ReceiptUseCase) DownloadReceiptPDF(ctx context.Context, saleID string) (pdfBytes []byte, filename string, err error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, "", domain.ErrNotFound
	}
	details, err := uc.saleRepo.GetDetailsBySaleID(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: obtener detalles: %w", err)
	}

	data := &ReceiptData{
		StoreName:     uc.settings.StoreName(ctx),
		Currency:      uc.settings.Currency(ctx),
		ReceiptNumber: sale.ReceiptNumber,
		SaleDate:      sale.SaleDate,
		PaymentMethod: sale.PaymentMethod,
		Total:         sale.TotalAmount,
	}

	if staff, err := uc.staffRepo.GetByID(sale.StaffID); err == nil && staff != nil {
		data.StaffName = staff.Name
	}
	if sale.CustomerID != "" {
		if customer, err := uc.customerRepo.GetByID(sale.CustomerID); err == nil && customer != nil {
			data.CustomerName = customer.Name
		}
	}

	for _, d := range details {
		line := ReceiptLine{
			PartName:    d.PartID,
			Quantity:    d.Quantity,
			PriceAtSale: d.PriceAtSale,
			Subtotal:    d.PriceAtSale.Mul(decimal.NewFromInt(d.Quantity)),
		}
		if part, err := uc.partRepo.GetByID(d.PartID); err == nil && part != nil {
			line.PartName = part.Name
		}
		data.Lines = append(data.Lines, line)
	}

	pdfBytes, err = uc.generator.GenerateReceipt(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: generar PDF: %w", err)
	}
	return pdfBytes, sale.ReceiptNumber + ".pdf", nil
}
