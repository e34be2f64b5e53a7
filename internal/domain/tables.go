package domain

var Tables = []interface{}{
	&Product{},
	&DailyInventory{},
	&Employee{},
	&PayrollEntry{},
}
