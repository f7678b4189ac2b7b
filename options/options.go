// Package options holds everything nativebus can be configured with. Values
// come from CLI flags with environment variable fallbacks; the package also
// performs "light" validation and resolves the config handed to the relay.
package options

import (
	"strconv"
	"time"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/batchcorp/nativebus/bus"
	"github.com/batchcorp/nativebus/frame"
)

const (
	DefaultAddress     = "amqp://127.0.0.1:5672/%2f"
	DefaultServiceName = "chrome-ext"
)

var (
	VERSION = "UNSET"

	ErrEmptyAddress     = errors.New("--address cannot be empty")
	ErrEmptyServiceName = errors.New("--service-name cannot be empty")
	ErrEmptyExchange    = errors.New("--exchange cannot be empty")
)

type Options struct {
	Debug   bool             `help:"Enable debug output" env:"NATIVEBUS_DEBUG"`
	Version kong.VersionFlag `help:"Show version and exit"`

	Address     string `help:"AMQP broker address" default:"${default_address}" env:"AMQP"`
	ServiceName string `help:"Service name inbound messages must carry in their 'service' header" default:"${default_service}" env:"NATIVEBUS_SERVICE_NAME"`
	Exchange    string `help:"Name of the headers exchange to declare and publish to" default:"${default_service}" env:"NATIVEBUS_EXCHANGE"`
	Identity    string `help:"Relay identity (queue name and 'id'/'from-id' header value); generated per run if empty" env:"NATIVEBUS_IDENTITY"`

	NoPublishHeaders bool `help:"Do not tag published messages with a 'from-id' header" env:"NATIVEBUS_NO_PUBLISH_HEADERS"`

	ByteOrder    string `help:"Byte order of the 4-byte frame length prefix (${enum})" enum:"little,big,native" default:"little" env:"NATIVEBUS_BYTE_ORDER"`
	MaxFrameSize uint32 `help:"Largest frame accepted from the local side in bytes (0 = unlimited)" default:"${default_max_frame_size}" env:"NATIVEBUS_MAX_FRAME_SIZE"`

	Stats         bool          `help:"Periodically log relay stats" env:"NATIVEBUS_STATS"`
	StatsInterval time.Duration `help:"How often to log stats" default:"10s" env:"NATIVEBUS_STATS_INTERVAL"`

	// Browsers launch native hosts with extra arguments: Chrome passes the
	// caller's origin (and --parent-window on Windows), Firefox passes the
	// manifest path and extension id. They are accepted and ignored.
	ParentWindow string   `name:"parent-window" hidden:""`
	Args         []string `arg:"" optional:"" hidden:""`
}

// New parses args (without the program name) into Options
func New(args []string) (*kong.Context, *Options, error) {
	opts := &Options{}

	k, err := kong.New(
		opts,
		kong.Name("nativebus"),
		kong.Description("Native messaging host that relays frames to and from an AMQP headers exchange"),
		kong.ShortUsageOnError(),
		kong.Vars{
			"version":                VERSION,
			"default_address":        DefaultAddress,
			"default_service":        DefaultServiceName,
			"default_max_frame_size": strconv.Itoa(frame.DefaultMaxFrameSize),
		},
	)
	if err != nil {
		return nil, nil, errors.Wrap(err, "unable to create new kong instance")
	}

	kongCtx, err := k.Parse(args)
	if err != nil {
		return nil, nil, errors.Wrap(err, "unable to parse CLI options")
	}

	if err := validateOptions(opts); err != nil {
		return nil, nil, errors.Wrap(err, "unable to validate options")
	}

	if opts.Identity == "" {
		opts.Identity = uuid.NewString()
	}

	return kongCtx, opts, nil
}

func validateOptions(opts *Options) error {
	if opts.Address == "" {
		return ErrEmptyAddress
	}

	if opts.ServiceName == "" {
		return ErrEmptyServiceName
	}

	if opts.Exchange == "" {
		return ErrEmptyExchange
	}

	return nil
}

// BusConfig resolves the broker side of the relay config
func (o *Options) BusConfig() *bus.Config {
	return &bus.Config{
		Address:      o.Address,
		ServiceName:  o.ServiceName,
		ExchangeName: o.Exchange,
		Identity:     o.Identity,
		TagPublishes: !o.NoPublishHeaders,
	}
}

// FrameConfig resolves the local side of the relay config; reader and writer
// are normally os.Stdin and os.Stdout.
func (o *Options) FrameConfig() *frame.Config {
	return &frame.Config{
		ByteOrder:    o.ByteOrder,
		MaxFrameSize: o.MaxFrameSize,
	}
}
