package domain

// Collection is the physical name a record type is stored under.
type Collection string

const (
	ProductCollection Collection = "coffeeproduct"
	ArticleCollection Collection = "article"
	OrderCollection   Collection = "order"
)

func (c Collection) String() string { return string(c) }
