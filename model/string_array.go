// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package model

import (
	"database/sql/driver"
	"encoding/json"
	"sort"

	"github.com/pkg/errors"
)

// StringArray stores a []string as a JSON column.
type StringArray []string

func (sa StringArray) Value() (driver.Value, error) {
	if sa == nil {
		return "[]", nil
	}
	b, err := json.Marshal(sa)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (sa *StringArray) Scan(value interface{}) error {
	var buf []byte
	switch v := value.(type) {
	case nil:
		*sa = nil
		return nil
	case []byte:
		buf = v
	case string:
		buf = []byte(v)
	default:
		return errors.Errorf("unsupported type %T for StringArray", value)
	}
	if len(buf) == 0 {
		*sa = nil
		return nil
	}
	return json.Unmarshal(buf, sa)
}

// Contains reports whether s is in the array. The match is exact.
func (sa StringArray) Contains(s string) bool {
	for _, v := range sa {
		if v == s {
			return true
		}
	}
	return false
}

// Equal compares both arrays as sets of strings; order is ignored.
func (sa StringArray) Equal(other StringArray) bool {
	if len(sa) != len(other) {
		return false
	}
	a := append([]string(nil), sa...)
	b := append([]string(nil), other...)
	sort.Strings(a)
	sort.Strings(b)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
