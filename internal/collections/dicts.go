package collections

import (
	"maps"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// KV is one entry of an insertion-ordered map.
type KV[K comparable, V any] struct {
	Key   K `json:"key" yaml:"key"`
	Value V `json:"value" yaml:"value"`
}

func pairs[K comparable, V any](om *orderedmap.OrderedMap[K, V]) []KV[K, V] {
	out := make([]KV[K, V], 0, om.Len())
	for p := om.Oldest(); p != nil; p = p.Next() {
		out = append(out, KV[K, V]{Key: p.Key, Value: p.Value})
	}
	return out
}

type DictComprehensions struct {
	Squares  map[int]int    `json:"squares" yaml:"squares"`
	Filtered map[string]int `json:"filtered" yaml:"filtered"`
	Inverted map[int]string `json:"inverted" yaml:"inverted"`
}

type RemovedValues struct {
	Removed  int             `json:"removed" yaml:"removed"`
	LastItem KV[string, int] `json:"last_item" yaml:"last_item"`
}

type DictOperationsResult struct {
	GetA           int                `json:"get_a" yaml:"get_a"`
	GetWithDefault int                `json:"get_with_default" yaml:"get_with_default"`
	AfterUpdate    []KV[string, int]  `json:"after_update" yaml:"after_update"`
	RemovedValues  RemovedValues      `json:"removed_values" yaml:"removed_values"`
	Keys           []string           `json:"keys" yaml:"keys"`
	Values         []int              `json:"values" yaml:"values"`
	Items          []KV[string, int]  `json:"items" yaml:"items"`
	HasKeyA        bool               `json:"has_key_a" yaml:"has_key_a"`
	HasValue2      bool               `json:"has_value_2" yaml:"has_value_2"`
	Merged         map[string]int     `json:"merged" yaml:"merged"`
	Comprehensions DictComprehensions `json:"comprehensions" yaml:"comprehensions"`
}

// DictOperations uses an insertion-ordered map so that "pop the last item"
// is well defined.
func DictOperations() DictOperationsResult {
	var r DictOperationsResult

	d := orderedmap.New[string, int]()
	d.Set("a", 1)
	d.Set("b", 2)
	d.Set("c", 3)

	r.GetA, _ = d.Get("a")
	r.GetWithDefault = getOr(d, "d", 0)

	d.Set("d", 4)
	for _, kv := range []KV[string, int]{{"e", 5}, {"f", 6}} {
		d.Set(kv.Key, kv.Value)
	}
	r.AfterUpdate = pairs(d)

	removed, _ := d.Delete("f")
	newest := d.Newest()
	last := KV[string, int]{Key: newest.Key, Value: newest.Value}
	d.Delete(newest.Key)
	r.RemovedValues = RemovedValues{Removed: removed, LastItem: last}

	r.Items = pairs(d)
	for _, kv := range r.Items {
		r.Keys = append(r.Keys, kv.Key)
		r.Values = append(r.Values, kv.Value)
		if kv.Value == 2 {
			r.HasValue2 = true
		}
	}
	_, r.HasKeyA = d.Get("a")

	merged := map[string]int{"a": 1, "b": 2}
	maps.Copy(merged, map[string]int{"b": 3, "c": 4})
	r.Merged = merged

	r.Comprehensions = DictComprehensions{
		Squares:  map[int]int{},
		Filtered: map[string]int{},
		Inverted: map[int]string{},
	}
	for x := range 5 {
		r.Comprehensions.Squares[x] = x * x
	}
	for _, kv := range r.Items {
		if kv.Value > 2 {
			r.Comprehensions.Filtered[kv.Key] = kv.Value
		}
		r.Comprehensions.Inverted[kv.Value] = kv.Key
	}

	return r
}

func getOr[K comparable, V any](om *orderedmap.OrderedMap[K, V], key K, def V) V {
	if v, ok := om.Get(key); ok {
		return v
	}
	return def
}

type NestedDictsResult struct {
	JohnsAge   int            `json:"johns_age" yaml:"johns_age"`
	ITBudget   int            `json:"it_budget" yaml:"it_budget"`
	SafeAccess any            `json:"safe_access" yaml:"safe_access"`
	Flattened  map[string]any `json:"flattened" yaml:"flattened"`
}

// SafeGet walks nested maps along keys and returns def as soon as a level
// is missing or is not a map.
func SafeGet(m any, def any, keys ...string) any {
	cur := m
	for _, k := range keys {
		level, ok := cur.(map[string]any)
		if !ok {
			return def
		}
		if cur, ok = level[k]; !ok {
			return def
		}
	}
	return cur
}

// Flatten joins nested keys with sep.
func Flatten(m map[string]any, sep string) map[string]any {
	out := make(map[string]any)
	flattenInto(out, m, "", sep)
	return out
}

func flattenInto(out, m map[string]any, prefix, sep string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + sep + k
		}
		if nested, ok := v.(map[string]any); ok {
			flattenInto(out, nested, key, sep)
			continue
		}
		out[key] = v
	}
}

func NestedDicts() NestedDictsResult {
	company := map[string]any{
		"employees": map[string]any{
			"john": map[string]any{"age": 30, "department": "IT", "salary": 70000},
			"jane": map[string]any{"age": 28, "department": "HR", "salary": 65000},
			"bob":  map[string]any{"age": 35, "department": "IT", "salary": 80000},
		},
		"departments": map[string]any{
			"IT": map[string]any{"budget": 500000, "head": "john"},
			"HR": map[string]any{"budget": 200000, "head": "jane"},
		},
	}

	johnsAge, _ := SafeGet(company, 0, "employees", "john", "age").(int)
	itBudget, _ := SafeGet(company, 0, "departments", "IT", "budget").(int)

	return NestedDictsResult{
		JohnsAge:   johnsAge,
		ITBudget:   itBudget,
		SafeAccess: SafeGet(company, 0, "employees", "alice", "age"),
		Flattened: Flatten(map[string]any{
			"a": map[string]any{"b": 1, "c": 2},
			"d": 3,
		}, "_"),
	}
}
