package domain

import (
	"fmt"
	"strings"
)

// Record is one row of a dataset's flat catalogue ("frequent" array).
// Records are immutable once decoded.
type Record struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Cat       string   `json:"cat"`
	SubCat    string   `json:"subCat"`
	Subset    string   `json:"subset,omitempty"`
	Freq      string   `json:"freq"`
	Unit      string   `json:"unit"`
	Src       string   `json:"src"`
	SData     string   `json:"sData"`
	Datatype  string   `json:"datatype"`
	Hierarchy []string `json:"hierarchy"`
	DB        string   `json:"db"`
	TableName string   `json:"table_name,omitempty"`
	Region    string   `json:"region,omitempty"`
}

// Field names a record column that can be sorted on.
type Field string

const (
	FieldNone      Field = ""
	FieldID        Field = "id"
	FieldTitle     Field = "title"
	FieldCat       Field = "cat"
	FieldSubCat    Field = "subCat"
	FieldSubset    Field = "subset"
	FieldFreq      Field = "freq"
	FieldUnit      Field = "unit"
	FieldSrc       Field = "src"
	FieldSData     Field = "sData"
	FieldDatatype  Field = "datatype"
	FieldDB        Field = "db"
	FieldTableName Field = "table_name"
	FieldRegion    Field = "region"
)

var fields = []Field{
	FieldID, FieldTitle, FieldCat, FieldSubCat, FieldSubset, FieldFreq, FieldUnit,
	FieldSrc, FieldSData, FieldDatatype, FieldDB, FieldTableName, FieldRegion,
}

// Fields returns every sortable field in wire order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

func (f Field) String() string {
	return string(f)
}

// Label returns the column heading used by the table views.
func (f Field) Label() string {
	switch f {
	case FieldID:
		return "ID"
	case FieldTitle:
		return "Title"
	case FieldCat:
		return "Category"
	case FieldSubCat:
		return "Sub Category"
	case FieldSubset:
		return "Subset"
	case FieldFreq:
		return "Frequency"
	case FieldUnit:
		return "Unit"
	case FieldSrc:
		return "Source"
	case FieldSData:
		return "Start"
	case FieldDatatype:
		return "Type"
	case FieldDB:
		return "Database"
	case FieldTableName:
		return "Table"
	case FieldRegion:
		return "Region"
	default:
		return ""
	}
}

// ParseField resolves a wire field name, ignoring case.
func ParseField(name string) (Field, error) {
	name = strings.TrimSpace(name)
	for _, f := range fields {
		if strings.EqualFold(string(f), name) {
			return f, nil
		}
	}
	return FieldNone, fmt.Errorf("unknown field %q", name)
}

// Field returns the value of f and whether it is present.
// Optional fields that are absent report false.
func (r *Record) Field(f Field) (string, bool) {
	var v string
	switch f {
	case FieldID:
		v = r.ID
	case FieldTitle:
		v = r.Title
	case FieldCat:
		v = r.Cat
	case FieldSubCat:
		v = r.SubCat
	case FieldSubset:
		v = r.Subset
	case FieldFreq:
		v = r.Freq
	case FieldUnit:
		v = r.Unit
	case FieldSrc:
		v = r.Src
	case FieldSData:
		v = r.SData
	case FieldDatatype:
		v = r.Datatype
	case FieldDB:
		v = r.DB
	case FieldTableName:
		v = r.TableName
	case FieldRegion:
		v = r.Region
	default:
		return "", false
	}
	return v, v != ""
}

// HasRegion reports whether the record carries the optional region.
func (r *Record) HasRegion() bool {
	return r.Region != ""
}

// FindRecord returns the record with the given id.
func FindRecord(records []Record, id string) (Record, bool) {
	for _, r := range records {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}
