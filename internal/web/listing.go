package web

import "strings"

// Profile es la ficha tal como llega de GET /api/profile.
type Profile struct {
	ID          int64   `json:"id"`
	Image       *string `json:"image"`
	Name        string  `json:"name"`
	Lastname    *string `json:"lastname"`
	Description *string `json:"description"`
	Birthday    string  `json:"birthday"`
	Gender      string  `json:"gender"`
	Birthmark   int     `json:"birthmark"`
	AnimalType  string  `json:"animal_type"`
	AddressID   *int64  `json:"address_id"`
	OwnerID     *int64  `json:"owner_id"`
}

const DefaultPageSize = 10

// PageSizes son los tamaños que ofrece el selector de la tabla.
var PageSizes = []int{10, 25, 50}

// Filter deja las fichas cuyo nombre, apellido, género o tipo contienen q (sin
// distinguir mayúsculas). q vacío devuelve todo.
func Filter(items []Profile, q string) []Profile {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return items
	}

	out := make([]Profile, 0, len(items))
	for _, p := range items {
		if matches(p, q) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p Profile, q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	if p.Lastname != nil && strings.Contains(strings.ToLower(*p.Lastname), q) {
		return true
	}
	return strings.Contains(strings.ToLower(p.Gender), q) ||
		strings.Contains(strings.ToLower(p.AnimalType), q)
}

// Page es una página de la tabla. Index empieza en 1.
type Page struct {
	Items []Profile
	Index int
	Size  int
	Count int
	Total int
}

func (p Page) HasPrev() bool { return p.Index > 1 }
func (p Page) HasNext() bool { return p.Index < p.Count }
func (p Page) Prev() int { return p.Index - 1 }
func (p Page) Next() int { return p.Index + 1 }

// Paginate corta items en páginas de size. Un size fuera de PageSizes usa el default;
// un índice fuera de rango se ajusta a la primera o la última página.
func Paginate(items []Profile, page, size int) Page {
	if !validPageSize(size) {
		size = DefaultPageSize
	}

	count := (len(items) + size - 1) / size
	if count == 0 {
		count = 1
	}
	if page < 1 {
		page = 1
	}
	if page > count {
		page = count
	}

	start := (page - 1) * size
	end := start + size
	if end > len(items) {
		end = len(items)
	}

	return Page{
		Items: items[start:end],
		Index: page,
		Size:  size,
		Count: count,
		Total: len(items),
	}
}

func validPageSize(size int) bool {
	for _, s := range PageSizes {
		if s == size {
			return true
		}
	}
	return false
}
