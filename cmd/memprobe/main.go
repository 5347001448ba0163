package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"memreach/alloc"
	"memreach/hexdump"
	"memreach/process"
)

const usage = `memprobe inspects and mutates the memory of a running process:
it resolves module bases, walks pointer chains and performs typed reads and
writes at the resolved addresses`

func main() {
	app := cli.NewApp()
	app.Name = "memprobe"
	app.Usage = usage
	app.Commands = []cli.Command{
		modulesCmd,
		readCmd,
		writeCmd,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

var targetFlags = []cli.Flag{
	cli.IntFlag{Name: "pid", Usage: "target process ID"},
	cli.StringFlag{Name: "name", Usage: "target process name (lowest PID wins)"},
}

var chainFlags = []cli.Flag{
	cli.StringFlag{Name: "module", Usage: "module whose base roots the chain"},
	cli.StringFlag{Name: "base", Usage: "raw base address instead of a module, e.g. 0x140000000"},
	cli.StringFlag{Name: "chain", Usage: "comma-separated offsets, e.g. '0x10,0x44'"},
}

func openTarget(c *cli.Context) (process.Handle, process.ModuleResolver, error) {
	if pid := c.Int("pid"); pid > 0 {
		return openByPID(process.ProcessID(pid))
	}
	if name := c.String("name"); name != "" {
		return openByName(name)
	}
	return nil, nil, fmt.Errorf("either --pid or --name is required")
}

func rootAllocation(c *cli.Context, h process.Handle, resolver process.ModuleResolver) (alloc.Allocation, error) {
	if name := c.String("module"); name != "" {
		mod, err := resolver.FindModule(name)
		if err != nil {
			return alloc.Allocation{}, err
		}
		return alloc.Existing(h, mod.Base), nil
	}

	if raw := c.String("base"); raw != "" {
		base, err := strconv.ParseUint(raw, 0, 64)
		if err != nil {
			return alloc.Allocation{}, fmt.Errorf("invalid base %q: %w", raw, err)
		}
		return alloc.Existing(h, process.Address(base)), nil
	}

	return alloc.Allocation{}, fmt.Errorf("either --module or --base is required")
}

func parseChain(raw string) ([]int64, error) {
	if raw == "" {
		return nil, fmt.Errorf("--chain is required")
	}

	var offsets []int64
	for _, part := range strings.Split(raw, ",") {
		off, err := strconv.ParseInt(strings.TrimSpace(part), 0, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid offset %q: %w", part, err)
		}
		offsets = append(offsets, off)
	}

	return offsets, nil
}

var modulesCmd = cli.Command{
	Name:  "modules",
	Usage: "list modules loaded in the target",
	Flags: targetFlags,
	Action: func(c *cli.Context) error {
		h, resolver, err := openTarget(c)
		if err != nil {
			return err
		}
		defer h.Close()

		mods, err := resolver.Modules()
		if err != nil {
			return err
		}

		for _, m := range mods {
			fmt.Println(m)
		}
		return nil
	},
}

var readCmd = cli.Command{
	Name:  "read",
	Usage: "resolve a pointer chain and read at the final address",
	Flags: append(append([]cli.Flag{
		cli.StringFlag{Name: "type", Value: "bytes", Usage: "u8|u16|u32|u64|i8|i16|i32|i64|f32|f64|bytes"},
		cli.UintFlag{Name: "size", Value: 64, Usage: "byte count for --type bytes"},
	}, chainFlags...), targetFlags...),
	Action: func(c *cli.Context) error {
		h, resolver, err := openTarget(c)
		if err != nil {
			return err
		}
		defer h.Close()

		a, err := rootAllocation(c, h, resolver)
		if err != nil {
			return err
		}

		offsets, err := parseChain(c.String("chain"))
		if err != nil {
			return err
		}

		addr, err := a.DerefChain(offsets...)
		if err != nil {
			return err
		}
		fmt.Printf("resolved %s\n", addr)

		return printValue(a, addr, c.String("type"), process.Size(c.Uint("size")))
	},
}

var writeCmd = cli.Command{
	Name:  "write",
	Usage: "resolve a pointer chain and write a typed value at the final address",
	Flags: append(append([]cli.Flag{
		cli.StringFlag{Name: "type", Usage: "u8|u16|u32|u64|i8|i16|i32|i64|f32|f64"},
		cli.StringFlag{Name: "value", Usage: "value to write, parsed per --type"},
	}, chainFlags...), targetFlags...),
	Action: func(c *cli.Context) error {
		h, resolver, err := openTarget(c)
		if err != nil {
			return err
		}
		defer h.Close()

		a, err := rootAllocation(c, h, resolver)
		if err != nil {
			return err
		}

		offsets, err := parseChain(c.String("chain"))
		if err != nil {
			return err
		}

		addr, err := a.DerefChain(offsets...)
		if err != nil {
			return err
		}

		if err := writeValue(a, addr, c.String("type"), c.String("value")); err != nil {
			return err
		}
		fmt.Printf("wrote %s at %s\n", c.String("type"), addr)
		return nil
	},
}

func printValue(a alloc.Allocation, addr process.Address, typ string, size process.Size) error {
	switch typ {
	case "u8":
		v, err := a.ReadUINT8(addr)
		return printOrErr(v, err)
	case "u16":
		v, err := a.ReadUINT16(addr)
		return printOrErr(v, err)
	case "u32":
		v, err := a.ReadUINT32(addr)
		return printOrErr(v, err)
	case "u64":
		v, err := a.ReadUINT64(addr)
		return printOrErr(v, err)
	case "i8":
		v, err := a.ReadINT8(addr)
		return printOrErr(v, err)
	case "i16":
		v, err := a.ReadINT16(addr)
		return printOrErr(v, err)
	case "i32":
		v, err := a.ReadINT32(addr)
		return printOrErr(v, err)
	case "i64":
		v, err := a.ReadINT64(addr)
		return printOrErr(v, err)
	case "f32":
		v, err := a.ReadFLOAT32(addr)
		return printOrErr(v, err)
	case "f64":
		v, err := a.ReadFLOAT64(addr)
		return printOrErr(v, err)
	case "bytes":
		data, err := a.ReadBytes(addr, size)
		if err != nil {
			return err
		}
		opts := hexdump.DefaultOptions()
		opts.Color = true
		return hexdump.Fprint(os.Stdout, addr, data, opts)
	}
	return fmt.Errorf("unknown type %q", typ)
}

func printOrErr(v interface{}, err error) error {
	if err != nil {
		return err
	}
	fmt.Println(v)
	return nil
}

func writeValue(a alloc.Allocation, addr process.Address, typ, raw string) error {
	if typ == "" || raw == "" {
		return fmt.Errorf("--type and --value are required")
	}

	switch typ {
	case "u8", "u16", "u32", "u64":
		bits := map[string]int{"u8": 8, "u16": 16, "u32": 32, "u64": 64}[typ]
		v, err := strconv.ParseUint(raw, 0, bits)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", typ, raw, err)
		}
		switch typ {
		case "u8":
			return a.WriteUINT8(addr, uint8(v))
		case "u16":
			return a.WriteUINT16(addr, uint16(v))
		case "u32":
			return a.WriteUINT32(addr, uint32(v))
		default:
			return a.WriteUINT64(addr, v)
		}
	case "i8", "i16", "i32", "i64":
		bits := map[string]int{"i8": 8, "i16": 16, "i32": 32, "i64": 64}[typ]
		v, err := strconv.ParseInt(raw, 0, bits)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", typ, raw, err)
		}
		switch typ {
		case "i8":
			return a.WriteINT8(addr, int8(v))
		case "i16":
			return a.WriteINT16(addr, int16(v))
		case "i32":
			return a.WriteINT32(addr, int32(v))
		default:
			return a.WriteINT64(addr, v)
		}
	case "f32":
		v, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return fmt.Errorf("invalid f32 value %q: %w", raw, err)
		}
		return a.WriteFLOAT32(addr, float32(v))
	case "f64":
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("invalid f64 value %q: %w", raw, err)
		}
		return a.WriteFLOAT64(addr, v)
	}

	return fmt.Errorf("unknown type %q", typ)
}
