package migrator

import (
	"gorm.io/gorm"
)

// orderAllocator hands out display-order values for one table: the lowest
// non-negative integer not yet used. All used values are loaded in a single
// query at stage start, values allocated during the run stay taken.
type orderAllocator struct {
	used map[int]struct{}
}

func newOrderAllocator(tx *gorm.DB, table string) (*orderAllocator, error) {
	var values []int
	err := tx.Table(table).Pluck("`order`", &values).Error
	if err != nil {
		return nil, err
	}

	used := make(map[int]struct{}, len(values))
	for _, v := range values {
		used[v] = struct{}{}
	}

	return &orderAllocator{used: used}, nil
}

func (a *orderAllocator) next() int {
	for i := 0; ; i++ {
		if _, taken := a.used[i]; !taken {
			a.used[i] = struct{}{}
			return i
		}
	}
}
