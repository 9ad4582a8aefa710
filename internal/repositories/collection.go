package repositories

import (
	"context"
	"database/sql"

	"ai_manager_backend/internal/models"
)

// Record is implemented by every stored entity.
type Record interface {
	RecordID() string
}

// Collection is an ordered set of records of one kind. Records keep their
// insertion order; Delete never reorders the survivors.
type Collection[T Record] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (T, error)
	Count(ctx context.Context) (int, error)
	// Create appends rec. The id must already be set and unused.
	Create(ctx context.Context, rec T) (T, error)
	// Modify applies fn to the stored record atomically and persists the
	// result. fn must not change the record id. An error from fn aborts the
	// change and is returned as is.
	Modify(ctx context.Context, id string, fn func(*T) error) (T, error)
	// Delete removes the record and returns what was removed.
	Delete(ctx context.Context, id string) (T, error)
}

// Record kinds used as collection names in the SQL store.
const (
	KindEmployees     = "employees"
	KindInventory     = "inventory"
	KindProjects      = "projects"
	KindFinance       = "finance"
	KindEvents        = "events"
	KindNotifications = "notifications"
)

// Repositories bundles every collection the services need.
type Repositories struct {
	Employees     Collection[models.Employee]
	Inventory     Collection[models.InventoryItem]
	Projects      Collection[models.Project]
	Finance       Collection[models.FinanceRecord]
	Events        Collection[models.Event]
	Notifications Collection[models.Notification]
}

// NewMemoryRepositories returns process-local collections; a restart loses everything.
func NewMemoryRepositories() *Repositories {
	return &Repositories{
		Employees:     NewMemoryCollection[models.Employee](),
		Inventory:     NewMemoryCollection[models.InventoryItem](),
		Projects:      NewMemoryCollection[models.Project](),
		Finance:       NewMemoryCollection[models.FinanceRecord](),
		Events:        NewMemoryCollection[models.Event](),
		Notifications: NewMemoryCollection[models.Notification](),
	}
}

// NewSQLRepositories returns collections stored as JSON documents in the records table.
func NewSQLRepositories(db *sql.DB, dialect Dialect) *Repositories {
	return &Repositories{
		Employees:     NewSQLCollection[models.Employee](db, dialect, KindEmployees),
		Inventory:     NewSQLCollection[models.InventoryItem](db, dialect, KindInventory),
		Projects:      NewSQLCollection[models.Project](db, dialect, KindProjects),
		Finance:       NewSQLCollection[models.FinanceRecord](db, dialect, KindFinance),
		Events:        NewSQLCollection[models.Event](db, dialect, KindEvents),
		Notifications: NewSQLCollection[models.Notification](db, dialect, KindNotifications),
	}
}
