package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unsafe"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func init() {
	rootCmd.AddCommand(newLayoutCmd())
}

func newLayoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout <layout.yaml>",
		Short: "Compute a composite memory layout from a YAML description",
		Long: `The layout command reads a YAML description of a composite type and
computes field offsets, sizes, and alignment the way the Go compiler
lays the equivalent struct out. Fields marked pin: true make the whole
composite pin-flavored.

Example layout file:

  name: header
  fields:
    - name: magic
      type: uint32
    - name: body
      type: "[24]byte"
      pin: true

Example:
  slotctl layout header.yaml
  slotctl layout header.yaml --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout(args)
		},
	}
	return cmd
}

// layoutSpec is the YAML document shape.
type layoutSpec struct {
	Name   string      `yaml:"name"`
	Fields []fieldSpec `yaml:"fields"`
}

type fieldSpec struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	Pin  bool   `yaml:"pin"`
}

// fieldLayout is one computed row.
type fieldLayout struct {
	Index  int     `json:"index"`
	Name   string  `json:"name"`
	Type   string  `json:"type"`
	Pin    bool    `json:"pin"`
	Offset uintptr `json:"offset"`
	Size   uintptr `json:"size"`
	Align  uintptr `json:"align"`
}

// compositeLayout is the computed result for a whole document.
type compositeLayout struct {
	Name   string        `json:"name"`
	Size   uintptr       `json:"size"`
	Align  uintptr       `json:"align"`
	Flavor string        `json:"flavor"`
	Fields []fieldLayout `json:"fields"`
}

func runLayout(args []string) error {
	path := args[0]
	printVerbose("Reading layout: %s\n", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read layout file: %w", err)
	}

	var spec layoutSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return fmt.Errorf("failed to parse layout file: %w", err)
	}

	lay, err := computeLayout(&spec)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(lay)
	}

	printInfo("composite %s: size=%d align=%d flavor=%s\n", lay.Name, lay.Size, lay.Align, lay.Flavor)
	nameW := len("FIELD")
	for _, f := range lay.Fields {
		if len(f.Name) > nameW {
			nameW = len(f.Name)
		}
	}
	printInfo("  %-3s %-*s %-6s %-6s %-4s %-5s %s\n", "#", nameW, "FIELD", "TAG", "OFFSET", "SIZE", "ALIGN", "TYPE")
	for _, f := range lay.Fields {
		tag := "plain"
		if f.Pin {
			tag = "pinned"
		}
		printInfo("  %-3d %-*s %-6s %-6d %-4d %-5d %s\n", f.Index, nameW, f.Name, tag, f.Offset, f.Size, f.Align, f.Type)
	}
	return nil
}

// computeLayout lays the fields out in declaration order with natural
// alignment, the way the Go compiler does for the equivalent struct.
func computeLayout(spec *layoutSpec) (*compositeLayout, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("layout is missing a name")
	}
	if len(spec.Fields) == 0 {
		return nil, fmt.Errorf("layout %q has no fields", spec.Name)
	}

	lay := &compositeLayout{Name: spec.Name, Align: 1, Flavor: "plain"}
	seen := make(map[string]bool, len(spec.Fields))
	var off uintptr

	for i, f := range spec.Fields {
		if f.Name == "" {
			return nil, fmt.Errorf("field %d is missing a name", i)
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("duplicate field %q", f.Name)
		}
		seen[f.Name] = true

		size, al, err := typeLayout(f.Type)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}

		off = alignUp(off, al)
		lay.Fields = append(lay.Fields, fieldLayout{
			Index:  i,
			Name:   f.Name,
			Type:   f.Type,
			Pin:    f.Pin,
			Offset: off,
			Size:   size,
			Align:  al,
		})
		off += size
		if al > lay.Align {
			lay.Align = al
		}
		if f.Pin {
			lay.Flavor = "pin"
		}
	}

	lay.Size = alignUp(off, lay.Align)
	return lay, nil
}

func alignUp(n, a uintptr) uintptr {
	return (n + a - 1) &^ (a - 1)
}

// typeLayout resolves a type name to its size and alignment. It accepts the
// fixed-width Go scalars plus [N]T arrays over them.
func typeLayout(name string) (size, al uintptr, err error) {
	name = strings.TrimSpace(name)
	if strings.HasPrefix(name, "[") {
		end := strings.Index(name, "]")
		if end < 0 {
			return 0, 0, fmt.Errorf("malformed array type %q", name)
		}
		n, convErr := strconv.Atoi(name[1:end])
		if convErr != nil || n < 0 {
			return 0, 0, fmt.Errorf("malformed array length in %q", name)
		}
		elemSize, elemAlign, elemErr := typeLayout(name[end+1:])
		if elemErr != nil {
			return 0, 0, elemErr
		}
		return uintptr(n) * elemSize, elemAlign, nil
	}

	switch name {
	case "bool", "int8", "uint8", "byte":
		return 1, 1, nil
	case "int16", "uint16":
		return 2, 2, nil
	case "int32", "uint32", "rune", "float32":
		return 4, 4, nil
	case "int64", "uint64", "float64":
		return 8, unsafe.Alignof(uint64(0)), nil
	case "complex64":
		return 8, 4, nil
	case "complex128":
		return 16, unsafe.Alignof(uint64(0)), nil
	case "int", "uint":
		return unsafe.Sizeof(int(0)), unsafe.Alignof(int(0)), nil
	case "uintptr":
		return unsafe.Sizeof(uintptr(0)), unsafe.Alignof(uintptr(0)), nil
	default:
		return 0, 0, fmt.Errorf("unsupported type %q", name)
	}
}
