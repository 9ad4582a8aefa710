// Package fixtures seeds the restaurant demo data the UI is built around.
package fixtures

import (
	"context"
	"fmt"
	"time"

	"ai_manager_backend/internal/models"
	"ai_manager_backend/internal/repositories"
	"ai_manager_backend/pkg/utils"
)

// Seed fills every empty collection with demo records. Collections that
// already hold data are left alone, so seeding a persistent store is idempotent.
func Seed(ctx context.Context, repos *repositories.Repositories, now time.Time) error {
	steps := []struct {
		kind string
		run  func() (int, error)
	}{
		{repositories.KindEmployees, func() (int, error) { return seedCollection(ctx, repos.Employees, Employees(now)) }},
		{repositories.KindInventory, func() (int, error) { return seedCollection(ctx, repos.Inventory, Inventory(now)) }},
		{repositories.KindProjects, func() (int, error) { return seedCollection(ctx, repos.Projects, Projects()) }},
		{repositories.KindFinance, func() (int, error) { return seedCollection(ctx, repos.Finance, FinanceRecords(now)) }},
		{repositories.KindEvents, func() (int, error) { return seedCollection(ctx, repos.Events, Events(now)) }},
		{repositories.KindNotifications, func() (int, error) { return seedCollection(ctx, repos.Notifications, Notifications(now)) }},
	}

	for _, step := range steps {
		n, err := step.run()
		if err != nil {
			return fmt.Errorf("seeding %s: %w", step.kind, err)
		}
		if n > 0 {
			utils.LogInfo("Seeded demo data", map[string]interface{}{"collection": step.kind, "records": n})
		}
	}
	return nil
}

func seedCollection[T repositories.Record](ctx context.Context, c repositories.Collection[T], records []T) (int, error) {
	count, err := c.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}
	for _, rec := range records {
		if _, err := c.Create(ctx, rec); err != nil {
			return 0, err
		}
	}
	return len(records), nil
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func datePtr(s string) *time.Time {
	t := date(s)
	return &t
}

func dailyAttendance(now time.Time, presentYesterday bool) []models.AttendanceEntry {
	timeIn := now
	return []models.AttendanceEntry{
		{Date: now, Present: true, TimeIn: &timeIn},
		{Date: now.Add(-24 * time.Hour), Present: presentYesterday},
	}
}

// Employees returns the demo staff.
func Employees(now time.Time) []models.Employee {
	return []models.Employee{
		{
			ID: "emp1", Name: "Sarah Johnson", Email: "sarah.johnson@demo.com",
			Position: "Restaurant Manager", Department: "Management",
			Salary: 65000, HourlyRate: 31.25, Status: models.EmployeeActive,
			HireDate: date("2023-01-15"), Phone: "+1-555-0123", Address: "123 Main St, City, State 12345",
			Attendance: dailyAttendance(now, true),
		},
		{
			ID: "emp2", Name: "Mike Chen", Email: "mike.chen@demo.com",
			Position: "Head Chef", Department: "Kitchen",
			Salary: 58000, HourlyRate: 27.88, Status: models.EmployeeActive,
			HireDate: date("2023-03-01"), Phone: "+1-555-0124", Address: "456 Oak Ave, City, State 12345",
			Attendance: dailyAttendance(now, true),
		},
		{
			ID: "emp3", Name: "Lisa Rodriguez", Email: "lisa.rodriguez@demo.com",
			Position: "Server", Department: "Service",
			Salary: 35000, HourlyRate: 16.83, Status: models.EmployeeActive,
			HireDate: date("2023-05-20"), Phone: "+1-555-0125", Address: "789 Pine Rd, City, State 12345",
			Attendance: dailyAttendance(now, false),
		},
		{
			ID: "emp4", Name: "David Wilson", Email: "david.wilson@demo.com",
			Position: "Bartender", Department: "Service",
			Salary: 42000, HourlyRate: 20.19, Status: models.EmployeeActive,
			HireDate: date("2023-02-10"), Phone: "+1-555-0126", Address: "321 Elm St, City, State 12345",
			Attendance: dailyAttendance(now, true),
		},
		{
			ID: "emp5", Name: "Emma Thompson", Email: "emma.thompson@demo.com",
			Position: "Sous Chef", Department: "Kitchen",
			Salary: 48000, HourlyRate: 23.08, Status: models.EmployeeActive,
			HireDate: date("2023-04-05"), Phone: "+1-555-0127", Address: "654 Maple Dr, City, State 12345",
			Attendance: dailyAttendance(now, true),
		},
	}
}

// Inventory returns the demo stock list with statuses derived from quantities.
func Inventory(now time.Time) []models.InventoryItem {
	items := []models.InventoryItem{
		{ID: "inv1", Name: "Premium Wine Glasses", Category: "Glassware", Quantity: 12, MinStockLevel: 20, UnitPrice: 15.99, Supplier: "Restaurant Supply Co"},
		{ID: "inv2", Name: "Cocktail Napkins", Category: "Supplies", Quantity: 8, MinStockLevel: 50, UnitPrice: 12.50, Supplier: "Party Supplies Inc"},
		{ID: "inv3", Name: "Craft Beer Selection", Category: "Beverages", Quantity: 45, MinStockLevel: 30, UnitPrice: 8.99, Supplier: "Local Brewery"},
		{ID: "inv4", Name: "Fresh Salmon", Category: "Food", Quantity: 25, MinStockLevel: 15, UnitPrice: 24.99, Supplier: "Seafood Direct"},
		{ID: "inv5", Name: "Organic Vegetables", Category: "Food", Quantity: 0, MinStockLevel: 20, UnitPrice: 4.99, Supplier: "Farm Fresh Produce"},
	}
	for i := range items {
		items[i].ReorderPoint = float64(items[i].MinStockLevel) * 1.5
		items[i].MaxStock = items[i].MinStockLevel * 2
		items[i].UpdatedAt = now
		items[i].RefreshStatus()
	}
	return items
}

// Projects returns the demo project portfolio.
func Projects() []models.Project {
	return []models.Project{
		{
			ID: "proj1", Title: "Kitchen Equipment Upgrade",
			Description: "Upgrading kitchen equipment for better efficiency",
			Status:      models.ProjectInProgress, Priority: "High",
			StartDate: date("2024-01-15"), PlannedEndDate: datePtr("2024-03-30"),
			Budget: 45000, Spent: 32400, Manager: "Sarah Johnson",
			Team: []string{"Mike Chen", "Emma Thompson"},
		},
		{
			ID: "proj2", Title: "New Location Planning",
			Description: "Planning and preparation for second restaurant location",
			Status:      models.ProjectPlanning, Priority: "Medium",
			StartDate: date("2024-06-01"), PlannedEndDate: datePtr("2024-12-31"),
			Budget: 150000, Spent: 15000, Manager: "David Wilson",
			Team: []string{"Sarah Johnson", "Lisa Rodriguez"},
		},
		{
			ID: "proj3", Title: "Dining Room Renovation",
			Description: "Complete renovation of main dining area",
			Status:      models.ProjectCompleted, Priority: "Medium",
			StartDate: date("2023-09-01"), PlannedEndDate: datePtr("2023-11-30"), EndDate: datePtr("2023-11-28"),
			Budget: 75000, Spent: 73500, Manager: "Sarah Johnson",
			Team: []string{"Mike Chen", "Lisa Rodriguez", "David Wilson"},
		},
	}
}

// FinanceRecords returns ledger lines for today and the three most recent
// calendar months, so the overview and trend reports have data to work on.
func FinanceRecords(now time.Time) []models.FinanceRecord {
	records := []models.FinanceRecord{
		{ID: "fin1", Type: models.FinanceRevenue, Amount: 8450, Category: "Sales", Description: "Daily dining and bar sales", Date: now},
		{ID: "fin2", Type: models.FinanceExpense, Amount: 5820, Category: "Operations", Description: "Daily operating costs", Date: now},
	}

	monthly := []struct {
		revenue, payroll, supplies float64
	}{
		{116117, 52000, 29414},
		{112300, 51500, 28900},
		{108450, 50800, 30100},
	}
	seq := len(records)
	for offset, m := range monthly {
		first := time.Date(now.Year(), now.Month()-time.Month(offset), 1, 12, 0, 0, 0, now.Location())
		label := first.Format("January 2006")
		for _, line := range []struct {
			typ      models.FinanceType
			amount   float64
			category string
			desc     string
		}{
			{models.FinanceRevenue, m.revenue, "Sales", "Restaurant sales, " + label},
			{models.FinanceExpense, m.payroll, "Payroll", "Staff wages, " + label},
			{models.FinanceExpense, m.supplies, "Supplies", "Food and beverage purchasing, " + label},
		} {
			seq++
			records = append(records, models.FinanceRecord{
				ID:          fmt.Sprintf("fin%d", seq),
				Type:        line.typ,
				Amount:      line.amount,
				Category:    line.category,
				Description: line.desc,
				Date:        first,
			})
		}
	}

	for i := range records {
		records[i].CreatedAt = records[i].Date
	}
	return records
}

// Events returns two upcoming events and one that already took place.
func Events(now time.Time) []models.Event {
	day := func(offset int) time.Time {
		d := now.AddDate(0, 0, offset)
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, now.Location())
	}
	return []models.Event{
		{
			ID: "evt1", Title: "Wine Tasting Evening",
			Description: "Guided tasting of regional wines paired with small plates",
			Date:        day(7), Time: "19:00", Venue: "Main Dining Room",
			Capacity: 40, TicketPrice: 65, TicketsSold: 28, Category: "Tasting",
			Status: models.EventUpcoming, Organizer: "Sarah Johnson",
			Attendees: []string{}, CreatedAt: day(-14),
		},
		{
			ID: "evt2", Title: "Live Jazz Night",
			Description: "Local jazz trio with a seasonal cocktail menu",
			Date:        day(14), Time: "20:30", Venue: "Bar Lounge",
			Capacity: 80, TicketPrice: 25, TicketsSold: 35, Category: "Music",
			Status: models.EventUpcoming, Organizer: "David Wilson",
			Attendees: []string{}, CreatedAt: day(-10),
		},
		{
			ID: "evt3", Title: "Chef's Table Dinner",
			Description: "Seven-course tasting menu prepared by the kitchen team",
			Date:        day(-10), Time: "18:30", Venue: "Chef's Table",
			Capacity: 12, TicketPrice: 150, TicketsSold: 12, Category: "Dining",
			Status: models.EventCompleted, Organizer: "Mike Chen",
			Attendees: []string{}, CreatedAt: day(-40),
		},
	}
}

// Notifications returns the header alerts.
func Notifications(now time.Time) []models.Notification {
	return []models.Notification{
		{ID: "1", Type: "warning", Title: "Low Stock Alert", Message: "Cocktail Napkins are running low (8 remaining)", Timestamp: now.Add(-30 * time.Minute), ActionURL: "/inventory"},
		{ID: "2", Type: "error", Title: "Out of Stock", Message: "Organic Vegetables are out of stock", Timestamp: now.Add(-time.Hour), ActionURL: "/inventory"},
		{ID: "3", Type: "success", Title: "Project Milestone", Message: "Kitchen Equipment Upgrade reached 72% completion", Timestamp: now.Add(-2 * time.Hour), Read: true, ActionURL: "/projects"},
		{ID: "4", Type: "info", Title: "Monthly Report Ready", Message: "Last month's financial report is available for review", Timestamp: now.Add(-24 * time.Hour), Read: true, ActionURL: "/finance/reports"},
	}
}
