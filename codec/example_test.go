package codec_test

import (
	"fmt"

	"github.com/rafaeelricco/commit-gen/codec"
	"github.com/rafaeelricco/commit-gen/options"
	"github.com/rafaeelricco/commit-gen/shape"
)

type Commit struct {
	Hash    string   `json:"hash"`
	Message string   `json:"message"`
	Files   []string `json:"files,omitempty"`
}

func Example() {
	data, _ := codec.ParseJSON([]byte(`{"hash": "a1b2c3", "message": "fix: trim input"}`))

	commit, err := codec.Parse[Commit](data, options.Default())
	fmt.Println(commit.Message, err)

	_, err = codec.Parse[Commit](map[string]any{"hash": 1}, options.Default())
	fmt.Println(err)
	// Output:
	// fix: trim input <nil>
	// parsing field 'hash': Expected str but found int
}

func ExampleDecodeType() {
	page := shape.Declare("Page", []string{"T"},
		shape.NewField("items", shape.List(shape.Param("T"))),
	)

	fmt.Println(codec.DecodeType(page.Of(shape.Int), map[string]any{"items": []any{int64(1), "2"}}, options.Default()))
	// Output:
	// Err(parsing field 'items': At index 1: Expected int but found str)
}

func ExampleEncode() {
	v, _ := codec.Encode(Commit{Hash: "a1b2c3", Message: "init"})
	fmt.Println(v)
	// Output:
	// map[files:[] hash:a1b2c3 message:init]
}
