package query_test

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-ljson/ljson"
	"github.com/go-ljson/ljson/query"
	"github.com/go-ljson/ljson/tree"
)

func mustParseOne(s string) *tree.Node {
	root := tree.New()
	p := ljson.New(ljson.Options{})
	if _, err := p.Parse(strings.NewReader(s), root); err != nil {
		log.Fatalf("Parse: %v", err)
	}
	if n := p.ErrorCount(); n != 0 {
		log.Fatalf("Parse reported %d errors: %v", n, p.Errors())
	}
	return root
}

func Example_small() {
	root := mustParseOne(`{"server": {"host": "localhost", "port": 8080}}`)
	v, err := query.Eval(root, query.Path("server", "port"))
	if err != nil {
		log.Fatalf("Eval: %v", err)
	}
	fmt.Println(v.Int64())
	// Output:
	// 8080
}

func Example_medium() {
	root := mustParseOne(`
{
  "service": "billing",
  "server": {"host": "api.internal", "port": 8443},
  "database": {"driver": "postgres", "name": "billing_prod"},
  "features": ["webhooks", "retries", "idempotency-keys"]
}`)

	v, err := query.Eval(root, query.Object{
		"name": query.Path("service"),
		"addr": query.Array{
			query.Path("server", "host"),
			query.String(":"),
			query.Path("server", "port"),
		},
		"db": query.Path("database", "driver"),
	})
	if err != nil {
		log.Fatalf("Eval: %v", err)
	}
	fmt.Printf("service %s\n", v.Find("name").Value.StringValue())
	addr := v.Find("addr").Value
	fmt.Printf("listening on %s%s%d\n", addr.Elem(0).StringValue(), addr.Elem(1).StringValue(), addr.Elem(2).Int64())
	fmt.Printf("database driver: %s\n", v.Find("db").Value.StringValue())
	if query.Exists(root, "features") {
		fmt.Println("has feature flags")
	}
	// Output:
	// service billing
	// listening on api.internal:8443
	// database driver: postgres
	// has feature flags
}
