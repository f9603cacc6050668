// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

package analytics

import (
	"reflect"
	"testing"
)

type person struct {
	id   string
	name string
}

type order struct {
	personID string
	amount   float64
}

func personKey(p person) (string, bool) { return p.id, p.id != "" }
func orderKey(o order) (string, bool)   { return o.personID, o.personID != "" }

func TestInnerJoin(t *testing.T) {
	people := []person{{"1", "ann"}, {"2", "bob"}, {"3", "cy"}, {"", "blank"}}
	orders := []order{{"2", 5}, {"1", 10}, {"2", 7}, {"", 1}}

	got := InnerJoin(people, orders, personKey, orderKey)

	var pairs [][2]interface{}
	for _, j := range got {
		if !j.Matched {
			t.Errorf("inner join produced unmatched row %+v", j)
		}
		pairs = append(pairs, [2]interface{}{j.Left.name, j.Right.amount})
	}
	want := [][2]interface{}{{"ann", 10.0}, {"bob", 5.0}, {"bob", 7.0}}
	if !reflect.DeepEqual(pairs, want) {
		t.Errorf("InnerJoin pairs = %v, want %v", pairs, want)
	}
}

func TestLeftJoin(t *testing.T) {
	people := []person{{"1", "ann"}, {"9", "zed"}}
	orders := []order{{"1", 10}}

	got := LeftJoin(people, orders, personKey, orderKey)
	if len(got) != 2 {
		t.Fatalf("LeftJoin returned %d rows, want 2", len(got))
	}
	if !got[0].Matched || got[0].Right.amount != 10 {
		t.Errorf("first row = %+v, want match with amount 10", got[0])
	}
	if got[1].Matched || got[1].Left.name != "zed" || got[1].Right != (order{}) {
		t.Errorf("second row = %+v, want unmatched zed with zero right", got[1])
	}
}

func TestJoin_EmptyInputs(t *testing.T) {
	if got := InnerJoin([]person{}, []order{{"1", 1}}, personKey, orderKey); len(got) != 0 {
		t.Errorf("empty left inner join = %v", got)
	}
	if got := InnerJoin([]person{{"1", "ann"}}, nil, personKey, orderKey); len(got) != 0 {
		t.Errorf("empty right inner join = %v", got)
	}
	got := LeftJoin([]person{{"1", "ann"}}, nil, personKey, orderKey)
	if len(got) != 1 || got[0].Matched {
		t.Errorf("empty right left join = %v, want one unmatched row", got)
	}
}

func TestGroupBy_FirstOccurrenceOrder(t *testing.T) {
	rows := []order{{"b", 1}, {"a", 2}, {"b", 3}, {"", 4}, {"c", 5}}

	groups := GroupBy(rows, orderKey)

	var keys []string
	for _, g := range groups {
		keys = append(keys, g.Key)
	}
	if !reflect.DeepEqual(keys, []string{"b", "a", "c"}) {
		t.Errorf("group keys = %v, want [b a c]", keys)
	}
	if len(groups[0].Rows) != 2 || groups[0].Rows[1].amount != 3 {
		t.Errorf("group b rows = %v", groups[0].Rows)
	}

	SortGroups(groups)
	if groups[0].Key != "a" || groups[2].Key != "c" {
		t.Errorf("sorted keys = %s..%s", groups[0].Key, groups[2].Key)
	}
}

func TestGroupBy_Empty(t *testing.T) {
	if got := GroupBy([]order(nil), orderKey); len(got) != 0 {
		t.Errorf("GroupBy(nil) = %v, want no groups", got)
	}
}

func TestAggregates(t *testing.T) {
	rows := []order{{"a", 1.5}, {"b", -1}, {"c", 2.25}}
	positive := func(o order) (float64, bool) { return o.amount, o.amount >= 0 }

	if got := SumFloat(rows, positive); got != 3.75 {
		t.Errorf("SumFloat = %v, want 3.75", got)
	}
	if got := SumFloat([]order{}, positive); got != 0 {
		t.Errorf("SumFloat(empty) = %v, want 0", got)
	}
	if got := SumInt(rows, func(o order) int64 { return int64(o.amount) }); got != 2 {
		t.Errorf("SumInt = %d, want 2", got)
	}
	if got := Count(rows, func(o order) bool { return o.amount > 0 }); got != 2 {
		t.Errorf("Count = %d, want 2", got)
	}

	maxVal, ok := Max(rows, positive)
	if !ok || maxVal != 2.25 {
		t.Errorf("Max = %v, %v, want 2.25, true", maxVal, ok)
	}
	if _, ok := Max([]order{{"b", -1}}, positive); ok {
		t.Error("Max over rows with no eligible value should report ok=false")
	}
	if _, ok := Max([]order(nil), positive); ok {
		t.Error("Max over empty input should report ok=false")
	}
}

func TestTopK(t *testing.T) {
	entries := []Ranked[string, int]{
		{"delta", 2}, {"alpha", 5}, {"charlie", 2}, {"bravo", 5}, {"echo", 1},
	}
	orig := append([]Ranked[string, int](nil), entries...)

	got := TopK(entries, 3)
	want := []Ranked[string, int]{{"alpha", 5}, {"bravo", 5}, {"charlie", 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopK = %v, want %v", got, want)
	}
	if !reflect.DeepEqual(entries, orig) {
		t.Error("TopK modified its input")
	}
	if got := TopK(entries, 0); got != nil {
		t.Errorf("TopK(k=0) = %v, want nil", got)
	}
	if got := TopK([]Ranked[string, int]{}, 3); got != nil {
		t.Errorf("TopK(empty) = %v, want nil", got)
	}
	if got := TopK(entries[:2], 3); len(got) != 2 {
		t.Errorf("TopK with fewer entries than k returned %d", len(got))
	}
}
