package handlers

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"lifemoves/db"
)

// memStore is an in-memory DocumentStore for handler tests. It understands
// the two filter criteria the handlers build: field equality and $in
// membership.
type memStore struct {
	collections map[string][]bson.M
	unavailable bool
}

func newMemStore() *memStore {
	return &memStore{collections: map[string][]bson.M{}}
}

func (m *memStore) Available() bool {
	return !m.unavailable
}

func (m *memStore) CreateDocument(_ context.Context, collection string, doc any) (string, error) {
	if m.unavailable {
		return "", db.ErrUnavailable
	}

	// Round-trip through bson so stored documents look like what the
	// real driver returns (primitive.A arrays, primitive.DateTime, ...)
	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", err
	}
	var d bson.M
	if err := bson.Unmarshal(raw, &d); err != nil {
		return "", err
	}

	id := primitive.NewObjectID()
	d["_id"] = id
	m.collections[collection] = append(m.collections[collection], d)
	return id.Hex(), nil
}

func (m *memStore) GetDocuments(_ context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	if m.unavailable {
		return nil, db.ErrUnavailable
	}

	var out []bson.M
	for _, d := range m.collections[collection] {
		if !matchesFilter(d, filter) {
			continue
		}
		out = append(out, cloneDoc(d))
		if limit > 0 && int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

func (m *memStore) SetField(_ context.Context, collection string, id primitive.ObjectID, field string, value any) error {
	if m.unavailable {
		return db.ErrUnavailable
	}
	for _, d := range m.collections[collection] {
		if oid, ok := d["_id"].(primitive.ObjectID); ok && oid == id {
			d[field] = value
			return nil
		}
	}
	return db.ErrWriteFailed
}

func (m *memStore) Ping(context.Context) error {
	if m.unavailable {
		return db.ErrUnavailable
	}
	return nil
}

func (m *memStore) CollectionNames(context.Context) ([]string, error) {
	if m.unavailable {
		return nil, db.ErrUnavailable
	}
	var names []string
	for name := range m.collections {
		names = append(names, name)
	}
	return names, nil
}

func (m *memStore) count(collection string) int {
	return len(m.collections[collection])
}

func matchesFilter(doc bson.M, filter bson.M) bool {
	for field, want := range filter {
		switch w := want.(type) {
		case bson.M:
			set, ok := w["$in"]
			if !ok {
				return false
			}
			if !memberMatch(doc[field], set) {
				return false
			}
		default:
			if fmt.Sprintf("%v", doc[field]) != fmt.Sprintf("%v", want) {
				return false
			}
		}
	}
	return true
}

// memberMatch implements $in: the document field (scalar or array) must
// share at least one value with the candidate set.
func memberMatch(fieldVal any, set any) bool {
	fieldVals := asList(fieldVal)
	for _, sv := range asList(set) {
		for _, fv := range fieldVals {
			if fmt.Sprintf("%v", fv) == fmt.Sprintf("%v", sv) {
				return true
			}
		}
	}
	return false
}

func asList(v any) []any {
	switch t := v.(type) {
	case primitive.A:
		return t
	case []any:
		return t
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out
	default:
		return []any{v}
	}
}

func cloneDoc(d bson.M) bson.M {
	out := bson.M{}
	for k, v := range d {
		out[k] = v
	}
	return out
}
