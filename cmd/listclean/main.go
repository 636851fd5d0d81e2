package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"go.uber.org/zap"

	listclean "github.com/listclean/listclean-go"
	"github.com/listclean/listclean-go/internal/config"
	"github.com/listclean/listclean-go/internal/logger"
)

const usage = `usage: listclean <command> [args]

commands:
  verify <email>
  batch <email>...
  logs
  credits
  profile
  uploads
  upload <filename>
  upload-status <id>
  lists
  list <id>
  delete-list <id>
  download <id> <clean|dirty|unknown> [--json] [--token <token>]`

// errUsage marks argument errors that should print the usage text.
var errUsage = errors.New("invalid usage")

func main() {
	if err := start(); err != nil {
		var apiErr *listclean.APIError
		if errors.As(err, &apiErr) && apiErr.Body != nil {
			json.NewEncoder(os.Stderr).Encode(apiErr.Body)
		}
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
		}
		fmt.Fprintf(os.Stderr, "listclean: %v\n", err)
		os.Exit(1)
	}
}

func start() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.LogLevel, os.Stderr)
	defer log.Sync()

	client, err := listclean.New(cfg.APIKey,
		listclean.WithBaseURL(cfg.BaseURL),
		listclean.WithTimeout(cfg.Timeout),
		listclean.WithRetries(cfg.Retries),
		listclean.WithLogger(log),
	)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return run(ctx, client, log, os.Args[1:], os.Stdout)
}

// run executes one command and writes its JSON (or CSV) result to out.
func run(ctx context.Context, client *listclean.Client, log *zap.Logger, args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", errUsage)
	}

	cmd, rest := args[0], args[1:]
	log.Debug("running command", zap.String("command", cmd), zap.Int("args", len(rest)))

	var (
		resp any
		err  error
	)

	switch cmd {
	case "verify":
		if len(rest) != 1 {
			return fmt.Errorf("%w: verify takes one email", errUsage)
		}
		resp, err = client.VerifyEmail(ctx, rest[0])
	case "batch":
		resp, err = client.VerifyEmailBatch(ctx, rest)
	case "logs":
		resp, err = client.VerificationLogs(ctx)
	case "credits":
		resp, err = client.Credits(ctx)
	case "profile":
		resp, err = client.Profile(ctx)
	case "uploads":
		resp, err = client.ListUploads(ctx)
	case "upload":
		if len(rest) != 1 {
			return fmt.Errorf("%w: upload takes one filename", errUsage)
		}
		return upload(ctx, client, rest[0], out)
	case "upload-status":
		id, perr := parseID(rest)
		if perr != nil {
			return perr
		}
		resp, err = client.UploadStatus(ctx, id)
	case "lists":
		resp, err = client.Lists(ctx)
	case "list":
		id, perr := parseID(rest)
		if perr != nil {
			return perr
		}
		resp, err = client.List(ctx, id)
	case "delete-list":
		id, perr := parseID(rest)
		if perr != nil {
			return perr
		}
		resp, err = client.DeleteList(ctx, id)
	case "download":
		return download(ctx, client, rest, out)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}

	if err != nil {
		return fmt.Errorf("%s: %w", cmd, err)
	}
	return writeJSON(out, resp)
}

// upload starts a single-chunk upload and reports its status, the flow the
// API documents for small files.
func upload(ctx context.Context, client *listclean.Client, filename string, out io.Writer) error {
	fileType := strings.TrimPrefix(filepath.Ext(filename), ".")
	if fileType == "" {
		fileType = "csv"
	}

	started, err := client.StartUpload(ctx, listclean.StartUploadParams{
		Filename:        filename,
		FileType:        fileType,
		TotalChunkCount: 1,
		MaxChunkSize:    64000,
	})
	if err != nil {
		return fmt.Errorf("start upload: %w", err)
	}

	uploadID, ok := listclean.UploadIDFrom(started)
	if !ok {
		return errors.New("upload ID not returned by API")
	}

	status, err := client.UploadStatus(ctx, uploadID)
	if err != nil {
		return fmt.Errorf("upload status: %w", err)
	}

	return writeJSON(out, listclean.Response{"upload": started, "status": status})
}

func download(ctx context.Context, client *listclean.Client, args []string, out io.Writer) error {
	var (
		positional []string
		asJSON     bool
		opts       []listclean.DownloadOption
	)
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--json":
			asJSON = true
		case "--token":
			if i+1 >= len(args) {
				return fmt.Errorf("%w: --token needs a value", errUsage)
			}
			opts = append(opts, listclean.WithTokenOverride(args[i+1]))
			i++
		default:
			positional = append(positional, args[i])
		}
	}
	if len(positional) != 2 {
		return fmt.Errorf("%w: download takes <id> <type>", errUsage)
	}

	id, err := parseID(positional[:1])
	if err != nil {
		return err
	}

	if asJSON {
		resp, err := client.DownloadListJSON(ctx, id, positional[1], opts...)
		if err != nil {
			return fmt.Errorf("download: %w", err)
		}
		return writeJSON(out, resp)
	}

	csv, err := client.DownloadListCSV(ctx, id, positional[1], opts...)
	if err != nil {
		return fmt.Errorf("download: %w", err)
	}
	_, err = io.WriteString(out, csv)
	return err
}

func parseID(args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: expected one numeric id", errUsage)
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%w: id %q is not a number", errUsage, args[0])
	}
	return id, nil
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
