package domain

import (
	"errors"
	"fmt"
	"strings"
)

// DatasetName identifies one of the independently fetched dataset documents.
type DatasetName string

const (
	DatasetDefault DatasetName = "default"
	DatasetIMF     DatasetName = "IMF"
)

// ErrUnknownDataset is returned for names outside AllDatasets.
var ErrUnknownDataset = errors.New("unknown dataset")

// AllDatasets lists the selectable datasets in switcher order.
func AllDatasets() []DatasetName {
	return []DatasetName{DatasetDefault, DatasetIMF}
}

// ParseDatasetName resolves a dataset name, ignoring case.
func ParseDatasetName(s string) (DatasetName, error) {
	s = strings.TrimSpace(s)
	for _, d := range AllDatasets() {
		if strings.EqualFold(string(d), s) {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDataset, s)
}

func (d DatasetName) String() string {
	return string(d)
}

// Label is the human name shown in the dataset switcher.
func (d DatasetName) Label() string {
	switch d {
	case DatasetDefault:
		return "Default Dataset"
	case DatasetIMF:
		return "IMF Dataset"
	default:
		return string(d)
	}
}

// DefaultFile is the resource name a dataset is served under unless
// configured otherwise.
func (d DatasetName) DefaultFile() string {
	switch d {
	case DatasetIMF:
		return "response2.json"
	default:
		return "response1.json"
	}
}

// Next returns the dataset following d in switcher order, wrapping around.
func (d DatasetName) Next() DatasetName {
	all := AllDatasets()
	for i, n := range all {
		if n == d {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

// Document is a decoded dataset resource.
type Document struct {
	Categories CategoryTree
	Frequent   []Record
}
