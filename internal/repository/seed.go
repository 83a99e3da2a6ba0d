package repository

// seed.go holds the demo data set the service boots with when no
// database is configured. Names and amounts match the records the
// dashboard was designed around; amounts are IQD.

import (
	"time"

	"github.com/debtiq/debtiq/internal/model"
)

func seedTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

// SeedUsers returns the demo accounts. Both accept the demo password
// handled by the demo auth provider.
func SeedUsers() []model.User {
	now := time.Now().UTC()
	return []model.User{
		{ID: "1", Email: "admin@debtiq.com", FirstName: "Admin", LastName: "User", Role: "admin", CreatedAt: now},
		{ID: "2", Email: "user@debtiq.com", FirstName: "Test", LastName: "User", Role: "user", CreatedAt: now},
	}
}

// SeedClients returns the demo debtor list.
func SeedClients() []model.Client {
	return []model.Client{
		{ID: "1", Name: "أحمد محمد علي", Email: "ahmed.mohammed@example.com", Phone: "+964770123456", TotalDebt: 15000, Status: model.ClientStatusActive, CreatedAt: seedTime("2024-01-15T10:00:00Z")},
		{ID: "2", Name: "فاطمة علي حسن", Email: "fatima.ali@example.com", Phone: "+964771234567", TotalDebt: 8500, Status: model.ClientStatusOverdue, CreatedAt: seedTime("2024-01-20T14:30:00Z")},
		{ID: "3", Name: "محمد السعيد أحمد", Email: "mohammed.saeed@example.com", Phone: "+964772345678", TotalDebt: 12000, Status: model.ClientStatusActive, CreatedAt: seedTime("2024-02-01T09:15:00Z")},
		{ID: "4", Name: "زينب حسام الدين", Email: "zainab.hussam@example.com", Phone: "+964773456789", TotalDebt: 22500, Status: model.ClientStatusActive, CreatedAt: seedTime("2024-02-05T11:20:00Z")},
		{ID: "5", Name: "عمر خالد محمود", Email: "omar.khalid@example.com", Phone: "+964774567890", TotalDebt: 5750, Status: model.ClientStatusOverdue, CreatedAt: seedTime("2024-02-10T16:45:00Z")},
		{ID: "6", Name: "سارة عبد الله", Email: "sara.abdullah@example.com", Phone: "+964775678901", TotalDebt: 18900, Status: model.ClientStatusActive, CreatedAt: seedTime("2024-02-15T08:30:00Z")},
		{ID: "7", Name: "حسن علي رضا", Email: "hassan.ali@example.com", Phone: "+964776789012", TotalDebt: 31200, Status: model.ClientStatusActive, CreatedAt: seedTime("2024-02-20T13:15:00Z")},
		{ID: "8", Name: "مريم أحمد صالح", Email: "mariam.ahmed@example.com", Phone: "+964777890123", TotalDebt: 9800, Status: model.ClientStatusOverdue, CreatedAt: seedTime("2024-02-25T10:00:00Z")},
		{ID: "9", Name: "يوسف محمد كريم", Email: "youssef.mohammed@example.com", Phone: "+964778901234", TotalDebt: 14600, Status: model.ClientStatusActive, CreatedAt: seedTime("2024-03-01T14:20:00Z")},
		{ID: "10", Name: "نور الهدى عباس", Email: "noor.huda@example.com", Phone: "+964779012345", TotalDebt: 27300, Status: model.ClientStatusActive, CreatedAt: seedTime("2024-03-05T09:45:00Z")},
	}
}

// SeedVendors returns the demo creditor list.
func SeedVendors() []model.Vendor {
	return []model.Vendor{
		{ID: "1", Name: "شركة التوريدات المتقدمة", Email: "info@advanced-supplies.com", Phone: "+964750123456", TotalOwed: 25000, Status: model.VendorStatusActive, CreatedAt: seedTime("2024-01-10T08:00:00Z")},
		{ID: "2", Name: "مؤسسة الخدمات التجارية", Email: "contact@business-services.com", Phone: "+964751234567", TotalOwed: 18500, Status: model.VendorStatusActive, CreatedAt: seedTime("2024-01-25T11:45:00Z")},
		{ID: "3", Name: "شركة الإمدادات الذكية", Email: "sales@smart-supplies.com", Phone: "+964752345678", TotalOwed: 32800, Status: model.VendorStatusActive, CreatedAt: seedTime("2024-02-01T12:30:00Z")},
		{ID: "4", Name: "مجموعة التقنيات الحديثة", Email: "info@modern-tech.com", Phone: "+964753456789", TotalOwed: 15600, Status: model.VendorStatusActive, CreatedAt: seedTime("2024-02-08T09:15:00Z")},
		{ID: "5", Name: "شركة المواد الأولية", Email: "orders@raw-materials.com", Phone: "+964754567890", TotalOwed: 41200, Status: model.VendorStatusActive, CreatedAt: seedTime("2024-02-12T15:45:00Z")},
		{ID: "6", Name: "مؤسسة الحلول المتكاملة", Email: "contact@integrated-solutions.com", Phone: "+964755678901", TotalOwed: 28900, Status: model.VendorStatusActive, CreatedAt: seedTime("2024-02-18T11:20:00Z")},
		{ID: "7", Name: "شركة الأجهزة المتخصصة", Email: "info@specialized-equipment.com", Phone: "+964756789012", TotalOwed: 19750, Status: model.VendorStatusActive, CreatedAt: seedTime("2024-02-22T14:00:00Z")},
		{ID: "8", Name: "مجموعة الخدمات اللوجستية", Email: "logistics@supply-chain.com", Phone: "+964757890123", TotalOwed: 36400, Status: model.VendorStatusActive, CreatedAt: seedTime("2024-02-28T10:30:00Z")},
		{ID: "9", Name: "شركة التجهيزات الصناعية", Email: "sales@industrial-equipment.com", Phone: "+964758901234", TotalOwed: 23100, Status: model.VendorStatusActive, CreatedAt: seedTime("2024-03-03T16:15:00Z")},
		{ID: "10", Name: "مؤسسة الابتكار التقني", Email: "innovation@tech-solutions.com", Phone: "+964759012345", TotalOwed: 44800, Status: model.VendorStatusActive, CreatedAt: seedTime("2024-03-08T13:45:00Z")},
	}
}
