package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/movable-go/movable/config"
	"github.com/movable-go/movable/demo"
	"github.com/movable-go/movable/errors"
	"github.com/movable-go/movable/log"
	"github.com/movable-go/movable/metrics"
	"github.com/movable-go/movable/util"
)

// Constants for server configuration.
const (
	ServerReadTimeout       = 30 * time.Second
	ServerReadHeaderTimeout = 3 * time.Second
	ServerShutdownTimeout   = 5 * time.Second
	MaxRequestSize          = config.MiB
)

func main() {
	var (
		logLevelFlag string
		logJSON      bool
		logNoColor   bool

		port string
	)

	rootCmd := &cobra.Command{
		Use:   "movable",
		Short: "Ownership-transfer containers demo server",
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logLevel, err := zerolog.ParseLevel(logLevelFlag)
			if err != nil {
				log.InitGlobals(0, logJSON, true).Fatal().Msg("Unknown log level")
			}

			lg := log.InitGlobals(logLevel, logJSON, logNoColor || config.LogNoColor())
			ctx := lg.WithContext(context.Background())
			cmd.SetContext(ctx)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd.Context(), port)
		},
	}

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	addLogFlags(rootCmd.PersistentFlags(), &logLevelFlag, &logJSON, &logNoColor)

	rootCmd.PersistentFlags().StringVar(&port, "port", config.DefaultPort, "Port number")

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Get the demo server status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return NewClient(port).Status(cmd.Context())
		},
	}

	walkCmd := &cobra.Command{
		Use:   "walk",
		Short: "Run the list walkthrough",
		RunE: func(cmd *cobra.Command, _ []string) error {
			count, err := cmd.Flags().GetInt("count")
			if err != nil {
				return err //nolint:wrapcheck
			}

			return NewClient(port).Walk(cmd.Context(), walkRequest{Count: count})
		},
	}

	walkCmd.Flags().Int("count", demo.DefaultWalkSize, "Number of values to insert at head")

	transferCmd := &cobra.Command{
		Use:   "transfer",
		Short: "Run the ownership-transfer walkthrough",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return NewClient(port).Transfer(cmd.Context())
		},
	}

	rootCmd.AddCommand(statusCmd, walkCmd, transferCmd)

	err := rootCmd.Execute()
	if err != nil {
		zerolog.Ctx(context.Background()).Fatal().Err(err).Msg("")
	}
}

// addLogFlags registers the shared logging flags on a flag set.
func addLogFlags(fs *pflag.FlagSet, level *string, logJSON, noColor *bool) {
	fs.StringVar(level, "log-level", config.DefaultLogLevel, "Log level")
	fs.BoolVar(logJSON, "log-json", false, "Output log in JSON format")
	fs.BoolVar(noColor, "no-color", false, "Disable log color")
}

// runServer starts the demo HTTP server and blocks until it fails or a
// termination signal arrives.
func runServer(ctx context.Context, port string) error {
	addr, err := buildServerAddr(port)
	if err != nil {
		return errors.Wrap(err, "build server address")
	}

	srv := createServer()

	httpServer := http.Server{
		Addr:    addr,
		Handler: srv.Handler(),

		ReadTimeout:       ServerReadTimeout,
		ReadHeaderTimeout: ServerReadHeaderTimeout,
	}

	log.Ctx(ctx).Info("Starting server at http://" + addr)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	grp, grpCtx := errgroup.WithContext(ctx)

	grp.Go(func() error {
		err := httpServer.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return errors.Wrap(err, "listen")
	})

	grp.Go(func() error {
		<-grpCtx.Done()

		log.Ctx(ctx).Info("Shutting down")

		err := util.CtxWithTimeout(context.Background(), ServerShutdownTimeout,
			httpServer.Shutdown)

		return errors.Wrap(err, "shutdown")
	})

	return grp.Wait() //nolint:wrapcheck
}

var errUnsupportedPortRange = errors.New("port value is outside the supported range [1024 - 65535]")

// buildServerAddr constructs the server address from the port.
func buildServerAddr(port string) (string, error) {
	i, err := strconv.ParseInt(port, 10, 32)
	if err != nil {
		return "", errors.Wrap(err, "invalid port value format")
	}

	if i < 1024 || i > 65535 {
		return "", errUnsupportedPortRange
	}

	return "localhost:" + port, nil
}

// server runs the demo walkthroughs on request.
type server struct {
	// registry holds the server's metrics.
	registry *prometheus.Registry
	// started is when the server was created.
	started time.Time

	// walkRuns counts completed list walkthroughs.
	walkRuns atomic.Int64
	// transferRuns counts completed ownership-transfer walkthroughs.
	transferRuns atomic.Int64
}

// createServer creates a new server with its metrics registered.
func createServer() *server {
	reg := prometheus.NewRegistry()
	metrics.Init(reg, !config.DisableRuntimeMetrics())

	return &server{
		registry: reg,
		started:  time.Now(),
	}
}

// Handler returns the HTTP handler for the server.
func (s *server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/status", s.handleStatus)
	mux.HandleFunc("/walk", s.handleWalk)
	mux.HandleFunc("/transfer", s.handleTransfer)
	mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.New("http").Info(r.Method + " " + r.URL.String())
		mux.ServeHTTP(w, r)
	})
}

// handleStatus handles the /status endpoint.
func (s *server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w,
			http.StatusText(http.StatusMethodNotAllowed),
			http.StatusMethodNotAllowed)

		return
	}

	if r.ContentLength > MaxRequestSize {
		http.Error(w,
			http.StatusText(http.StatusRequestEntityTooLarge),
			http.StatusRequestEntityTooLarge)

		return
	}

	res := statusResponse{
		Ok:           true,
		Uptime:       time.Since(s.started).Round(time.Second).String(),
		WalkRuns:     s.walkRuns.Load(),
		TransferRuns: s.transferRuns.Load(),
	}

	writeResponse(w, res)
}

// handleWalk handles the /walk endpoint.
func (s *server) handleWalk(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w,
			http.StatusText(http.StatusMethodNotAllowed),
			http.StatusMethodNotAllowed)

		return
	}

	if r.ContentLength > MaxRequestSize {
		http.Error(w,
			http.StatusText(http.StatusRequestEntityTooLarge),
			http.StatusRequestEntityTooLarge)

		return
	}

	params := walkRequest{Count: demo.DefaultWalkSize}

	if r.ContentLength != 0 {
		data, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w,
				http.StatusText(http.StatusInternalServerError),
				http.StatusInternalServerError)

			return
		}

		err = json.Unmarshal(data, &params)
		if err != nil {
			http.Error(w,
				http.StatusText(http.StatusBadRequest),
				http.StatusBadRequest)

			return
		}
	}

	if params.Count < 0 {
		writeResponse(w, walkResponse{Err: "count must not be negative"})

		return
	}

	report := demo.Walk(params.Count)
	s.walkRuns.Add(1)

	writeResponse(w, walkResponse{Ok: true, Report: &report})
}

// handleTransfer handles the /transfer endpoint.
func (s *server) handleTransfer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w,
			http.StatusText(http.StatusMethodNotAllowed),
			http.StatusMethodNotAllowed)

		return
	}

	if r.ContentLength > MaxRequestSize {
		http.Error(w,
			http.StatusText(http.StatusRequestEntityTooLarge),
			http.StatusRequestEntityTooLarge)

		return
	}

	report := demo.Transfer()
	s.transferRuns.Add(1)

	writeResponse(w, transferResponse{Ok: true, Report: &report})
}

// writeResponse writes the response as JSON to the ResponseWriter.
func writeResponse[T any](w http.ResponseWriter, resp T) {
	err := json.NewEncoder(w).Encode(resp)
	if err != nil {
		http.Error(w,
			http.StatusText(http.StatusInternalServerError),
			http.StatusInternalServerError)
	}
}

// walkRequest represents the request body for the /walk endpoint.
type walkRequest struct {
	// Count is the number of values to insert at head.
	Count int `json:"count"`
}

// walkResponse represents the response body for the /walk endpoint.
type walkResponse struct {
	// Ok indicates if the operation was successful.
	Ok bool `json:"ok"`
	// Err is the error message if the operation failed.
	Err string `json:"error,omitempty"`

	// Report is the walkthrough report.
	Report *demo.WalkReport `json:"report,omitempty"`
}

// transferResponse represents the response body for the /transfer endpoint.
type transferResponse struct {
	// Ok indicates if the operation was successful.
	Ok bool `json:"ok"`
	// Err is the error message if the operation failed.
	Err string `json:"error,omitempty"`

	// Report is the walkthrough report.
	Report *demo.TransferReport `json:"report,omitempty"`
}

// statusResponse represents the response body for the /status endpoint.
type statusResponse struct {
	// Ok indicates if the operation was successful.
	Ok bool `json:"ok"`
	// Err is the error message if the operation failed.
	Err string `json:"error,omitempty"`

	// Uptime is how long the server has been running.
	Uptime string `json:"uptime"`
	// WalkRuns is the number of completed list walkthroughs.
	WalkRuns int64 `json:"walkRuns"`
	// TransferRuns is the number of completed ownership-transfer walkthroughs.
	TransferRuns int64 `json:"transferRuns"`
}

// Client is an HTTP client for a running demo server.
type Client struct {
	port string
}

func NewClient(port string) Client {
	return Client{port: port}
}

// Status requests the demo server status.
func (c Client) Status(ctx context.Context) error {
	return doClientRequest[statusResponse](ctx, c.port, http.MethodGet, "status", nil)
}

// Walk requests a list walkthrough run.
func (c Client) Walk(ctx context.Context, options walkRequest) error {
	return doClientRequest[walkResponse](ctx, c.port, http.MethodPost, "walk", options)
}

// Transfer requests an ownership-transfer walkthrough run.
func (c Client) Transfer(ctx context.Context) error {
	return doClientRequest[transferResponse](ctx, c.port, http.MethodPost, "transfer", nil)
}

func doClientRequest[T any](ctx context.Context, port, method, path string, options any) error {
	url := fmt.Sprintf("http://localhost:%s/%s", port, path)

	data := []byte("")
	if options != nil {
		var err error
		data, err = json.Marshal(options)
		if err != nil {
			return errors.Wrap(err, "encode request")
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(data))
	if err != nil {
		return errors.Wrap(err, "build request")
	}

	log.Ctx(ctx).Debugf("%s /%s %s", method, path, string(data))

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "request")
	}
	defer res.Body.Close()

	var resp T

	err = json.NewDecoder(res.Body).Decode(&resp)
	if err != nil {
		return errors.Wrap(err, "decode response")
	}

	j := json.NewEncoder(os.Stdout)
	j.SetIndent("", "  ")
	err = j.Encode(resp)

	return errors.Wrap(err, "print response")
}
