package registry

import (
	"context"
	"testing"
)

func TestRegister_Resolve(t *testing.T) {
	defer Unregister("bagfinder")

	Register("bagfinder", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return map[string]interface{}{"bags": 3, "product": args["product"]}, nil
	})

	got, err := Resolve(context.Background(), "bagfinder", map[string]interface{}{"product": "2"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	m, ok := got.(map[string]interface{})
	if !ok || m["bags"] != 3 || m["product"] != "2" {
		t.Errorf("got %v, want bags=3 product=2", got)
	}
}

func TestResolve_UnknownExtension(t *testing.T) {
	if _, err := Resolve(context.Background(), "nao-existe", nil); err == nil {
		t.Fatal("want error for unknown extension")
	}
}

func TestRegister_DuplicatePanics(t *testing.T) {
	Register("dupext", func(context.Context, map[string]interface{}) (interface{}, error) { return nil, nil })
	defer Unregister("dupext")
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate name")
		}
	}()
	Register("dupext", func(context.Context, map[string]interface{}) (interface{}, error) { return nil, nil })
}

func TestNames_ListsRegistered(t *testing.T) {
	defer Unregister("listedext")
	Register("listedext", func(context.Context, map[string]interface{}) (interface{}, error) { return nil, nil })

	found := false
	for _, n := range Names() {
		if n == "listedext" {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("Names() = %v, want to include listedext", Names())
	}
}
