package composite

import "sort"

// Tag - свободная метка возможности ("usable", "edible", ...), ортогональная слотам TypeTag.
type Tag string

// Tags - множество меток.
type Tags map[Tag]struct{}

func NewTags(tags ...Tag) Tags {
	t := make(Tags, len(tags))
	for _, tag := range tags {
		t[tag] = struct{}{}
	}
	return t
}

func (t Tags) Has(tag Tag) bool {
	_, ok := t[tag]
	return ok
}

func (t Tags) Add(tag Tag) {
	t[tag] = struct{}{}
}

// List возвращает метки в отсортированном виде (для логов и сериализации).
func (t Tags) List() []Tag {
	out := make([]Tag, 0, len(t))
	for tag := range t {
		out = append(out, tag)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
