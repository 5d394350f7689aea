// Command storefront is a small CLI over the client SDK, mostly useful for
// poking at an API instance: it mirrors what the web pages do on mount.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	brandapp "github.com/angelcloset/storefront/internal/brand/app"
	brandrest "github.com/angelcloset/storefront/internal/brand/infra/rest"
	cartapp "github.com/angelcloset/storefront/internal/cart/app"
	cartrest "github.com/angelcloset/storefront/internal/cart/infra/rest"
	catalogapp "github.com/angelcloset/storefront/internal/catalog/app"
	catalogdomain "github.com/angelcloset/storefront/internal/catalog/domain"
	catalogrest "github.com/angelcloset/storefront/internal/catalog/infra/rest"
	"github.com/angelcloset/storefront/internal/search"
	"github.com/angelcloset/storefront/internal/session"
	"github.com/angelcloset/storefront/internal/storefront"
	"github.com/angelcloset/storefront/pkg/config"
	"github.com/angelcloset/storefront/pkg/httpx"
	"github.com/angelcloset/storefront/pkg/logger"
	"github.com/angelcloset/storefront/pkg/shutdown"
	"github.com/angelcloset/storefront/pkg/storage"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fail(err)
	}
	log := logger.New(logger.Options{
		Service: "storefront",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	client := httpx.New(cfg.APIBaseURL)
	catalog := catalogapp.NewService(catalogrest.NewProductSource(client))
	brands := brandapp.NewDirectory(brandrest.NewBrandSource(client))
	cart := cartapp.NewService(cartrest.NewCartSource(client))
	history := search.NewHistory(storage.NewFileStore[[]string](filepath.Join(cfg.StateDir, "searchHistory.json")))
	sessions := session.NewManager(storage.NewFileStore[session.Record](filepath.Join(cfg.StateDir, "session.json")))
	pages := storefront.NewPages(catalog, brands, cart, history, log)

	if len(os.Args) < 2 {
		usage()
	}

	switch os.Args[1] {
	case "home":
		runHome(ctx, pages)
	case "browse":
		runBrowse(ctx, catalog, os.Args[2:])
	case "search":
		runSearch(ctx, pages, os.Args[2:])
	case "brands":
		runBrands(ctx, brands)
	case "cart":
		runCart(ctx, cart, pages, os.Args[2:])
	case "login":
		runLogin(sessions, os.Args[2:])
	case "logout":
		if err := sessions.Logout(); err != nil {
			fail(err)
		}
		fmt.Println("signed out")
	case "whoami":
		rec, ok := sessions.Current()
		if !ok {
			fmt.Println("not signed in")
			return
		}
		fmt.Printf("%s (%s)\n", rec.Name, rec.ID)
	default:
		usage()
	}
}

func runHome(ctx context.Context, pages *storefront.Pages) {
	view := pages.Home(ctx, "")

	if view.BrandsErr == nil {
		fmt.Printf("brands: %d\n", len(view.Brands))
	} else {
		fmt.Printf("brands unavailable: %v\n", view.BrandsErr)
	}
	if view.CartErr == nil {
		fmt.Printf("cart badge: %d\n", view.CartCount)
	} else {
		fmt.Printf("cart badge unavailable: %v\n", view.CartErr)
	}
	if view.ProductsErr != nil {
		fmt.Printf("new arrivals unavailable: %v\n", view.ProductsErr)
		return
	}
	fmt.Println("new arrivals:")
	for _, p := range view.Products {
		fmt.Printf("  #%d %s  %s\n", p.ID, p.Name, p.Price)
	}
}

func runBrowse(ctx context.Context, catalog *catalogapp.Service, args []string) {
	f := catalogapp.Filter{}
	if len(args) > 0 {
		f.Category = catalogdomain.Category(args[0])
	}
	if len(args) > 1 {
		f.Sort = catalogdomain.SortOrder(args[1])
	}

	products, err := catalog.Query(ctx, f)
	if err != nil {
		fail(err)
	}
	for _, p := range products {
		fmt.Printf("#%d %-30s %8s  %s\n", p.ID, p.Name, p.Price, p.Category)
	}
}

func runSearch(ctx context.Context, pages *storefront.Pages, args []string) {
	if len(args) < 1 {
		usage()
	}
	products, err := pages.Search(ctx, args[0], "")
	if err != nil {
		fail(err)
	}
	if len(products) == 0 {
		fmt.Println("no products found")
		return
	}
	for _, p := range products {
		fmt.Printf("#%d %s  %s\n", p.ID, p.Name, p.Price)
	}
}

func runBrands(ctx context.Context, dir *brandapp.Directory) {
	brands, err := dir.List(ctx)
	if err != nil {
		fail(err)
	}
	for _, b := range brands {
		fmt.Printf("#%d %s\n", b.ID, b.Name)
	}
}

func runCart(ctx context.Context, cart *cartapp.Service, pages *storefront.Pages, args []string) {
	if len(args) < 1 {
		usage()
	}

	switch args[0] {
	case "list":
		view, err := pages.Cart(ctx)
		if err != nil {
			fail(err)
		}
		for _, it := range view.Items {
			fmt.Printf("cart #%d: %s x%d @ %s\n", it.CartID, it.Name, it.Quantity, it.Price)
		}
		fmt.Printf("total: %s\n", view.Total)
	case "add":
		if len(args) < 3 {
			usage()
		}
		productID := mustInt(args[1])
		qty, err := strconv.Atoi(args[2])
		if err != nil {
			fail(err)
		}
		if err := cart.Add(ctx, productID, qty); err != nil {
			var re *cartapp.RefreshError
			if errors.As(err, &re) {
				fmt.Println("added, but the cart could not be refreshed")
				return
			}
			fail(err)
		}
		count, err := cart.Count(ctx)
		if err != nil {
			fail(err)
		}
		fmt.Printf("added, cart now holds %d items\n", count)
	case "remove":
		if len(args) < 2 {
			usage()
		}
		if err := cart.Remove(ctx, mustInt(args[1])); err != nil {
			fail(err)
		}
		fmt.Println("removed")
	default:
		usage()
	}
}

func runLogin(sessions *session.Manager, args []string) {
	if len(args) < 1 {
		usage()
	}
	rec, err := sessions.Login(session.Record{Name: args[0]})
	if err != nil {
		fail(err)
	}
	fmt.Printf("signed in as %s (%s)\n", rec.Name, rec.ID)
}

func mustInt(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		fail(err)
	}
	return n
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  storefront home
  storefront browse [category] [sort]
  storefront search <text>
  storefront brands
  storefront cart list
  storefront cart add <productID> <quantity>
  storefront cart remove <cartID>
  storefront login <name>
  storefront logout
  storefront whoami`)
	os.Exit(2)
}
