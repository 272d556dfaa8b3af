// Package enums provides type-safe enumeration types for the web interface.
//
// Each enum is a small struct with a name and a value, exported constants for every
// member, String() for display and a Parse function for string-to-enum conversion.
//
// Usage:
//
//	// use the constants
//	level := enums.LevelError
//
//	// convert to string for display or css class
//	fmt.Println(level.String()) // "error"
//
//	// parse from string (e.g., from flags)
//	dbType, err := enums.ParseDBType("postgres")
//	if err != nil {
//	    // handle invalid input
//	}
package enums

import (
	"fmt"
	"strings"
)

// Level is the severity of a user-visible flash message
type Level struct {
	name  string
	value int
}

// String returns the lower-case name of the level
func (l Level) String() string { return l.name }

// Index returns the underlying integer value
func (l Level) Index() int { return l.value }

// level values
var (
	LevelInfo    = Level{name: "info", value: 0}
	LevelSuccess = Level{name: "success", value: 1}
	LevelError   = Level{name: "error", value: 2}
)

// LevelValues contains all possible Level values
var LevelValues = []Level{LevelInfo, LevelSuccess, LevelError}

// ParseLevel converts a string to Level, case-insensitive
func ParseLevel(v string) (Level, error) {
	for _, l := range LevelValues {
		if strings.EqualFold(l.name, v) {
			return l, nil
		}
	}
	return Level{}, fmt.Errorf("invalid level: %q", v)
}

// DBType is the persistence backend kind
type DBType struct {
	name  string
	value int
}

// String returns the lower-case name of the database type
func (d DBType) String() string { return d.name }

// Index returns the underlying integer value
func (d DBType) Index() int { return d.value }

// database type values
var (
	DBTypeSQLite   = DBType{name: "sqlite", value: 0}
	DBTypePostgres = DBType{name: "postgres", value: 1}
)

// DBTypeValues contains all possible DBType values
var DBTypeValues = []DBType{DBTypeSQLite, DBTypePostgres}

// ParseDBType converts a string to DBType, case-insensitive. "postgresql" and "pg" are accepted as aliases.
func ParseDBType(v string) (DBType, error) {
	switch strings.ToLower(v) {
	case "postgresql", "pg":
		return DBTypePostgres, nil
	}
	for _, d := range DBTypeValues {
		if strings.EqualFold(d.name, v) {
			return d, nil
		}
	}
	return DBType{}, fmt.Errorf("invalid db type: %q", v)
}
