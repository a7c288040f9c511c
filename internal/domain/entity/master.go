package entity

import "time"

// Category agrupa artículos para filtros y reportes.
type Category struct {
	ID          string
	Name        string
	Description string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Supplier proveedor de artículos.
type Supplier struct {
	ID        string
	Name      string
	Contact   string
	Phone     string
	Email     string
	Address   string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Unit unidad de medida (pcs, kg, caja...).
type Unit struct {
	ID           string
	Name         string
	Abbreviation string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
