package models

// Medicine represents an inventory item in the clinic pharmacy. Stock is
// mutated only by prescription dispensing or an explicit edit.
type Medicine struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Stock       int    `json:"stock"`
	MinStock    int    `json:"minStock"`
	Price       int    `json:"price"`
	Unit        string `json:"unit"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Expiry      string `json:"expiry"`
}

func (m Medicine) RecordID() string { return m.ID }

// LowStock reports whether the medicine is at or below its reorder threshold.
func (m Medicine) LowStock() bool { return m.Stock <= m.MinStock }

// MedicineCategory is an admin-managed grouping for medicines.
type MedicineCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (c MedicineCategory) RecordID() string { return c.ID }
