// Package graphqlserver exposes the catalog and calculator over GraphQL.
package graphqlserver

import (
	"context"
	"encoding/json"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"obracalc.GO/calc"
	"obracalc.GO/catalog"
	"obracalc.GO/graphql"
	gqlmodels "obracalc.GO/graphql/models"
	"obracalc.GO/graphql/registry"
	"obracalc.GO/service/estimate"
)

// RootResolver resolves Query fields against the catalog store.
type RootResolver struct {
	Store *catalog.Store
}

// ProductsArgs matches the products query arguments.
type ProductsArgs struct {
	Category *string
}

func (r *RootResolver) Products(ctx context.Context, args ProductsArgs) []*gqlmodels.Product {
	if args.Category != nil && *args.Category != "" {
		return gqlmodels.FromProducts(r.Store.GetByCategory(*args.Category))
	}
	return gqlmodels.FromProducts(r.Store.GetAll())
}

// ProductArgs matches the product query arguments.
type ProductArgs struct {
	ID gql.ID
}

func (r *RootResolver) Product(ctx context.Context, args ProductArgs) *gqlmodels.Product {
	p, ok := r.Store.GetByID(string(args.ID))
	if !ok {
		return nil
	}
	return gqlmodels.FromProduct(p)
}

func (r *RootResolver) Categories(ctx context.Context) []string {
	return r.Store.GetCategories()
}

func (r *RootResolver) ConsumptionRates(ctx context.Context) []*gqlmodels.ConsumptionRate {
	rates := r.Store.GetRates()
	out := make([]*gqlmodels.ConsumptionRate, 0, len(rates))
	for _, rate := range rates {
		out = append(out, gqlmodels.FromRate(rate))
	}
	return out
}

// SearchArgs matches the search query arguments (default in schema: size=20).
type SearchArgs struct {
	Query string
	Size  int32
}

func (r *RootResolver) Search(ctx context.Context, args SearchArgs) []*gqlmodels.Product {
	size := int(args.Size)
	if size <= 0 {
		size = 20
	}
	if es := catalog.GetSearchService(); es.Enabled() {
		if hits, err := es.Search(ctx, args.Query, size); err == nil {
			return gqlmodels.FromProducts(hits)
		}
	}
	found := r.Store.Search(args.Query)
	if len(found) > size {
		found = found[:size]
	}
	return gqlmodels.FromProducts(found)
}

// CalcInput matches the CalcInput input type.
type CalcInput struct {
	ProductID   gql.ID
	Area        string
	Mode        *string
	Thickness   *float64
	Consumption *float64
}

// CalculateArgs matches the calculate query arguments.
type CalculateArgs struct {
	Input CalcInput
}

func (r *RootResolver) Calculate(ctx context.Context, args CalculateArgs) (*gqlmodels.CalcResult, error) {
	req := estimate.Request{
		ProductID: string(args.Input.ProductID),
		Area:      args.Input.Area,
	}
	if args.Input.Mode != nil {
		req.Mode = calc.Mode(*args.Input.Mode)
	}
	if args.Input.Thickness != nil {
		req.Thickness = *args.Input.Thickness
	}
	if args.Input.Consumption != nil {
		req.Consumption = *args.Input.Consumption
	}
	res, _, err := estimate.Quote(r.Store, req)
	if err != nil {
		return nil, err
	}
	return gqlmodels.FromResult(res), nil
}

// ExtensionArgs for _extension(name, args).
type ExtensionArgs struct {
	Name string
	Args *string
}

func (r *RootResolver) Extension(ctx context.Context, args ExtensionArgs) (*string, error) {
	var m map[string]interface{}
	if args.Args != nil && *args.Args != "" {
		_ = json.Unmarshal([]byte(*args.Args), &m)
	}
	if m == nil {
		m = make(map[string]interface{})
	}
	out, err := registry.Resolve(ctx, args.Name, m)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

// NewSchema parses the schema and returns a graphql-go Schema.
func NewSchema(store *catalog.Store) (*gql.Schema, error) {
	return gql.ParseSchema(graphql.Schema(), &RootResolver{Store: store}, gql.UseFieldResolvers())
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
