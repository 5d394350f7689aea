// Package devapi is an in-memory stand-in for the storefront REST API,
// used for local development and as the fixture behind the client's
// integration tests. It mimics the real service's wire shapes, including
// the legacy wrapped category response.
package devapi

import (
	"errors"
	"strings"
	"sync"
	"time"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
)

type Product struct {
	ID          int64     `json:"id"`
	Category    string    `json:"category"`
	ImgSrc      string    `json:"imgsrc"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	BrandID     int64     `json:"brand"`
	Price       float64   `json:"price"`
	IsNew       bool      `json:"isnew"`
	CreateDate  time.Time `json:"createdate"`
}

type Brand struct {
	ID        int64  `json:"id"`
	BrandName string `json:"brandname"`
	BrandLogo string `json:"brandlogo"`
}

type AboutPage struct {
	BrandID     int64  `json:"brand_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Img         string `json:"img"`
}

type Branch struct {
	ID       int64  `json:"id"`
	BrandID  int64  `json:"brand_id"`
	Name     string `json:"branch_name"`
	Location string `json:"location"`
	Province string `json:"province"`
}

type CartItem struct {
	CartID    int64     `json:"cart_id"`
	ProductID int64     `json:"product_id"`
	Name      string    `json:"name"`
	ImgSrc    string    `json:"imgsrc"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Store struct {
	mu         sync.RWMutex
	products   []Product
	brands     []Brand
	about      map[int64]AboutPage
	branches   []Branch
	cart       []CartItem
	nextCartID int64
}

func NewStore() *Store {
	s := &Store{about: map[int64]AboutPage{}}
	s.seed()
	return s
}

func (s *Store) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Product(nil), s.products...)
}

func (s *Store) ProductsByCategory(category string) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []Product{}
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) ProductsByBrand(brandID int64) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []Product{}
	for _, p := range s.products {
		if p.BrandID == brandID {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) SearchProducts(query string) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	out := []Product{}
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) Product(id int64) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

func (s *Store) Brands() []Brand {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Brand(nil), s.brands...)
}

func (s *Store) Brand(id int64) (Brand, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.brands {
		if b.ID == id {
			return b, true
		}
	}
	return Brand{}, false
}

func (s *Store) About(brandID int64) (AboutPage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.about[brandID]
	return a, ok
}

func (s *Store) BranchesByBrand(brandID int64) []Branch {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []Branch{}
	for _, b := range s.branches {
		if b.BrandID == brandID {
			out = append(out, b)
		}
	}
	return out
}

func (s *Store) CartItems() []CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]CartItem(nil), s.cart...)
}

// AddToCart increments the quantity when the product is already in the
// cart, otherwise appends a new line with a snapshot of the product.
func (s *Store) AddToCart(productID int64, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ProductID == productID {
			s.cart[i].Quantity += quantity
			s.cart[i].UpdatedAt = time.Now()
			return nil
		}
	}

	var product Product
	found := false
	for _, p := range s.products {
		if p.ID == productID {
			product, found = p, true
			break
		}
	}
	if !found {
		return ErrNotFound
	}

	s.nextCartID++
	now := time.Now()
	s.cart = append(s.cart, CartItem{
		CartID:    s.nextCartID,
		ProductID: product.ID,
		Name:      product.Name,
		ImgSrc:    product.ImgSrc,
		Quantity:  quantity,
		Price:     product.Price,
		CreatedAt: now,
		UpdatedAt: now,
	})
	return nil
}

func (s *Store) RemoveFromCart(cartID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].CartID == cartID {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) seed() {
	day := func(n int) time.Time {
		return time.Date(2024, time.March, n, 0, 0, 0, 0, time.UTC)
	}

	s.products = []Product{
		{ID: 1, Category: "women", Name: "Floral Summer Dress", BrandID: 1, Price: 1290, IsNew: true, ImgSrc: "/img/p1.jpg", Description: "Light cotton dress", CreateDate: day(10)},
		{ID: 2, Category: "women", Name: "Linen Blouse", BrandID: 2, Price: 790, IsNew: false, ImgSrc: "/img/p2.jpg", Description: "Relaxed fit", CreateDate: day(2)},
		{ID: 3, Category: "men", Name: "Oxford Shirt", BrandID: 1, Price: 990, IsNew: true, ImgSrc: "/img/p3.jpg", Description: "Classic cut", CreateDate: day(8)},
		{ID: 4, Category: "men", Name: "Denim Jacket", BrandID: 3, Price: 2190, IsNew: false, ImgSrc: "/img/p4.jpg", Description: "Stonewashed", CreateDate: day(1)},
		{ID: 5, Category: "kids", Name: "Dino Hoodie", BrandID: 4, Price: 590, IsNew: true, ImgSrc: "/img/p5.jpg", Description: "Soft fleece", CreateDate: day(12)},
		{ID: 6, Category: "kids", Name: "Canvas Sneakers", BrandID: 5, Price: 690, IsNew: false, ImgSrc: "/img/p6.jpg", Description: "Rubber sole", CreateDate: day(5)},
		{ID: 7, Category: "other", Name: "Tote Bag", BrandID: 6, Price: 390, IsNew: true, ImgSrc: "/img/p7.jpg", Description: "Organic canvas", CreateDate: day(15)},
	}

	s.brands = []Brand{
		{ID: 1, BrandName: "Angel Closet", BrandLogo: "/img/b1.png"},
		{ID: 2, BrandName: "Lumen", BrandLogo: "/img/b2.png"},
		{ID: 3, BrandName: "North Loom", BrandLogo: "/img/b3.png"},
		{ID: 4, BrandName: "Tiny Steps", BrandLogo: "/img/b4.png"},
		{ID: 5, BrandName: "Sprout", BrandLogo: "/img/b5.png"},
		{ID: 6, BrandName: "Everyday Goods", BrandLogo: "/img/b6.png"},
	}

	for _, b := range s.brands {
		s.about[b.ID] = AboutPage{
			BrandID:     b.ID,
			Title:       "About " + b.BrandName,
			Description: b.BrandName + " has been crafting clothes since 2012.",
			Img:         b.BrandLogo,
		}
	}

	s.branches = []Branch{
		{ID: 1, BrandID: 1, Name: "Siam Square", Location: "414 Rama I Rd", Province: "Bangkok"},
		{ID: 2, BrandID: 1, Name: "Nimman", Location: "17 Nimmanhaemin Rd", Province: "Chiang Mai"},
		{ID: 3, BrandID: 2, Name: "Central Festival", Location: "88 Sukhumvit Rd", Province: "Chonburi"},
	}
}
