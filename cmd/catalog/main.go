// Command catalog queries the alloy catalogue from the terminal and prints
// every state the query passes through.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"alloy-catalog/internal/backend"
	"alloy-catalog/internal/catalog"
	"alloy-catalog/internal/client"
	"alloy-catalog/internal/config"
	"alloy-catalog/internal/model"
	"alloy-catalog/internal/service"
	"alloy-catalog/internal/validation"

	"github.com/rs/zerolog"
)

const (
	alloysShown  = 3
	descMaxRunes = 60
)

type options struct {
	op       string
	id       string
	category string
	query    string
	remote   string
	apiKey   string
	timeout  time.Duration
	verbose  bool

	order model.OrderRequest
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (*options, error) {
	var o options
	fs := flag.NewFlagSet("catalog", flag.ContinueOnError)
	fs.StringVar(&o.op, "op", "products", "operation: products, product, category, search, contacts, home, order")
	fs.StringVar(&o.id, "id", "", "product id for -op product")
	fs.StringVar(&o.category, "category", "", "category for -op category, e.g. NICHROME_WIRE")
	fs.StringVar(&o.query, "q", "", "search text for -op search")
	fs.StringVar(&o.remote, "remote", "", "base URL of the catalogue API; empty uses the built-in catalogue")
	fs.StringVar(&o.apiKey, "api-key", "", "API key for -remote")
	fs.DurationVar(&o.timeout, "timeout", 30*time.Second, "query timeout")
	fs.BoolVar(&o.verbose, "v", false, "debug logging")
	fs.StringVar(&o.order.Name, "name", "", "contact name for -op order")
	fs.StringVar(&o.order.Phone, "phone", "", "contact phone for -op order")
	fs.StringVar(&o.order.Email, "email", "", "contact email for -op order")
	fs.StringVar(&o.order.Company, "company", "", "company for -op order")
	fs.StringVar(&o.order.Alloy, "alloy", "", "alloy grade for -op order")
	fs.StringVar(&o.order.Quantity, "quantity", "", "quantity for -op order")
	fs.StringVar(&o.order.Comment, "comment", "", "comment for -op order")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	o.order.ProductID = o.id
	return &o, nil
}

func run(args []string, out io.Writer) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}

	level := "warn"
	if o.verbose {
		level = "debug"
	}
	logger := config.NewLogger(config.LoggerConfig{Level: level, Format: "console"}, "alloy-catalog-cli")

	b, err := newBackend(o, logger)
	if err != nil {
		return err
	}
	svc := service.NewCatalogService(b, nil, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	return execute(ctx, svc, o, out)
}

func newBackend(o *options, logger zerolog.Logger) (backend.Backend, error) {
	if o.remote != "" {
		return client.New(client.Config{BaseURL: o.remote, APIKey: o.apiKey, Timeout: o.timeout}, logger)
	}
	return backend.NewStatic(catalog.Default(), backend.StaticOptions{}, logger), nil
}

func execute(ctx context.Context, svc service.CatalogService, o *options, out io.Writer) error {
	switch o.op {
	case "products":
		return render(ctx, out, svc.Products(ctx), writeProducts)
	case "product":
		if o.id == "" {
			return errors.New("-id is required for -op product")
		}
		return render(ctx, out, svc.Product(ctx, o.id), writeProduct)
	case "category":
		category, err := model.ParseCategory(o.category)
		if err != nil {
			return fmt.Errorf("%w: %q (known: %s)", err, o.category, knownCategories())
		}
		return render(ctx, out, svc.ProductsByCategory(ctx, category), writeProducts)
	case "search":
		return render(ctx, out, svc.Search(ctx, o.query), writeProducts)
	case "contacts":
		return render(ctx, out, svc.ContactInfo(ctx), writeContact)
	case "home":
		return render(ctx, out, svc.HomeData(ctx), writeHome)
	case "order":
		if err := validation.ValidateOrder(&o.order); err != nil {
			return err
		}
		return render(ctx, out, svc.SubmitOrder(ctx, &o.order), func(w io.Writer, ok bool) {
			if ok {
				fmt.Fprintln(w, model.MsgOrderAccepted)
			}
		})
	default:
		return fmt.Errorf("unknown operation %q", o.op)
	}
}

// render prints each state of stream and returns an error for a failed query.
func render[T any](ctx context.Context, out io.Writer, stream <-chan service.Result[T], write func(io.Writer, T)) error {
	var failure error
	seenTerminal := false

	for {
		var (
			r  service.Result[T]
			ok bool
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case r, ok = <-stream:
		}
		if !ok {
			break
		}

		failure = service.Match(r,
			func() error {
				fmt.Fprintln(out, "Загрузка...")
				return nil
			},
			func(v T) error {
				write(out, v)
				return nil
			},
			func(qe *service.QueryError) error {
				fmt.Fprintf(out, "Ошибка (%s): %s\n", qe.Kind, qe.Message)
				return qe
			},
		)
		seenTerminal = seenTerminal || r.Terminal()
	}

	if !seenTerminal {
		return errors.New("query ended without a result")
	}
	return failure
}

func writeProducts(w io.Writer, products []model.Product) {
	if len(products) == 0 {
		fmt.Fprintln(w, "Ничего не найдено")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tНАЗВАНИЕ\tКАТЕГОРИЯ\tСПЛАВЫ")
	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			p.ID, p.Name, p.Category.DisplayName(), validation.FormatAlloys(p.Alloys, alloysShown))
	}
	tw.Flush()
	fmt.Fprintf(w, "Всего: %d\n", len(products))
}

func writeProduct(w io.Writer, p model.Product) {
	fmt.Fprintf(w, "%s (%s)\n", p.Name, p.Category.DisplayName())
	fmt.Fprintln(w, validation.Truncate(p.Description, descMaxRunes))
	if len(p.Alloys) > 0 {
		fmt.Fprintf(w, "Марки: %s\n", strings.Join(p.Alloys, ", "))
	}
	for _, s := range p.Specifications {
		fmt.Fprintf(w, "  - %s\n", s)
	}
}

func writeContact(w io.Writer, c model.ContactInfo) {
	phone := c.Phone
	if phone != "" {
		phone = validation.FormatPhone(phone)
	}
	fmt.Fprintf(w, "Телефон: %s\n", phone)
	fmt.Fprintf(w, "Email: %s\n", c.Email)
	fmt.Fprintf(w, "Адрес: %s\n", c.Address)
	fmt.Fprintf(w, "Сайт: %s\n", c.Website)
	fmt.Fprintf(w, "%s; %s\n", c.WorkingHours.Weekdays, c.WorkingHours.Weekend)
}

func writeHome(w io.Writer, h model.HomeData) {
	fmt.Fprintf(w, "%s: %s\n%s\n", h.Title, h.Subtitle, h.Tagline)
	for _, a := range h.Advantages {
		fmt.Fprintf(w, "* %s: %s\n", a.Title, a.Description)
	}
}

func knownCategories() string {
	names := make([]string, 0, len(model.Categories()))
	for _, c := range model.Categories() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
