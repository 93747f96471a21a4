package domain

import "fmt"

// DataSourceProfile names a record source the CLI can evaluate reports against
type DataSourceProfile struct {
	Name  string
	Path  string // sqlite database file
	Limit int
}

func (p DataSourceProfile) String() string {
	return fmt.Sprintf("%s:%s", p.Name, p.Path)
}
