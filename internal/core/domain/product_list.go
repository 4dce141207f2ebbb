package domain

// ProductList is the complete ordered set of products, in creation order.
// It is always persisted as a whole.
type ProductList []Product

func (l ProductList) Find(id string) (Product, bool) {
	for _, p := range l {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

func (l ProductList) Contains(id string) bool {
	_, ok := l.Find(id)
	return ok
}

// Filter returns the products with the given id, or every product when id is empty.
func (l ProductList) Filter(id string) ProductList {
	if id == "" {
		return l.Clone()
	}
	out := ProductList{}
	for _, p := range l {
		if p.ID == id {
			out = append(out, p)
		}
	}
	return out
}

// Replace swaps every element sharing edited's id for edited. The second
// return value reports whether anything matched.
func (l ProductList) Replace(edited Product) (ProductList, bool) {
	out := make(ProductList, len(l))
	matched := false
	for i, p := range l {
		if p.ID == edited.ID {
			out[i] = edited
			matched = true
			continue
		}
		out[i] = p
	}
	return out, matched
}

// Remove drops every element with the given id.
func (l ProductList) Remove(id string) (ProductList, int) {
	out := make(ProductList, 0, len(l))
	for _, p := range l {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out, len(l) - len(out)
}

func (l ProductList) Clone() ProductList {
	out := make(ProductList, len(l))
	copy(out, l)
	return out
}
