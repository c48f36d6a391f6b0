package model

type StatusCount struct {
	Status string `db:"status"`
	Total  int    `db:"total"`
}

type OrderTotals struct {
	Orders      int     `db:"orders"`
	PaidRevenue float64 `db:"paid_revenue"`
}

type Catalog struct {
	MenuItems int `db:"menu_items"`
	Employees int `db:"employees"`
}
