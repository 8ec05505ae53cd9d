// Command atelierctl is the administration CLI for the Resin by Dounia API.
//
// It signs in with the admin credentials, caches the issued token in a local
// sqlite database, and manages products, creations and tutorials:
//
//	atelierctl login -email admin@example.com -password secret
//	atelierctl products add -name "Ocean tray" -price 45 -image tray1.jpg -image tray2.jpg
//	atelierctl tutorials add -title "Pouring basics" -video pour.mp4 -thumbnail pour.jpg
//	atelierctl products delete -id 3
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/amnayelamri/ResinByDounia/internal/apiclient"
	"github.com/amnayelamri/ResinByDounia/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	serverURL := flag.String("server", envOr("ATELIER_SERVER", "http://localhost:8080"), "base URL of the API server")
	sessionPath := flag.String("session", defaultSessionPath(), "path to the local session database")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()

	sessions, err := apiclient.NewSessionStore(ctx, *sessionPath)
	if err != nil {
		fatalf("open session store: %v", err)
	}
	defer sessions.Close()

	client := apiclient.NewAdminClient(apiclient.Config{BaseURL: *serverURL})

	// Restore a cached token if one exists; commands that do not need
	// authorization work fine without it.
	if session, err := sessions.LoadSession(ctx); err == nil {
		client.SetToken(session.Token)
	}

	if err := run(ctx, client, sessions, args); err != nil {
		if errors.Is(err, apiclient.ErrUnauthorized) {
			fatalf("%v (run `atelierctl login` first)", err)
		}
		fatalf("%v", err)
	}
}

func run(ctx context.Context, client apiclient.AdminClient, sessions apiclient.SessionStore, args []string) error {
	switch args[0] {
	case "login":
		return runLogin(ctx, client, sessions, args[1:])
	case "logout":
		return sessions.ClearSession(ctx)
	case "status":
		return runStatus(ctx, client, sessions)
	case "products":
		return runProducts(ctx, client, args[1:])
	case "creations":
		return runCreations(ctx, client, args[1:])
	case "tutorials":
		return runTutorials(ctx, client, args[1:])
	case "version":
		printBuildInfo()
		return nil
	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func runLogin(ctx context.Context, client apiclient.AdminClient, sessions apiclient.SessionStore, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "admin email")
	password := fs.String("password", "", "admin password")
	fs.Parse(args)

	login, err := client.Login(ctx, *email, *password)
	if err != nil {
		return err
	}

	if err = sessions.SaveSession(ctx, login.User.Email, login.Token); err != nil {
		return err
	}

	fmt.Printf("signed in as %s (%s)\n", login.User.Email, login.User.Role)
	return nil
}

func runStatus(ctx context.Context, client apiclient.AdminClient, sessions apiclient.SessionStore) error {
	health, err := client.Health(ctx)
	if err != nil {
		return err
	}
	fmt.Println(health.Message)

	session, err := sessions.LoadSession(ctx)
	if errors.Is(err, apiclient.ErrLocalSessionNotFound) {
		fmt.Println("not signed in")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("signed in as %s since %s\n", session.Email, session.SavedAt.Format("2006-01-02 15:04"))
	return nil
}

func runProducts(ctx context.Context, client apiclient.AdminClient, args []string) error {
	if len(args) == 0 {
		return errors.New("products: expected list, add, update or delete")
	}

	switch args[0] {
	case "list":
		products, err := client.ListProducts(ctx)
		if err != nil {
			return err
		}
		return printJSON(products)

	case "add":
		fs := flag.NewFlagSet("products add", flag.ExitOnError)
		name := fs.String("name", "", "product name")
		description := fs.String("description", "", "product description")
		price := fs.Float64("price", 0, "product price")
		var imagePaths stringList
		fs.Var(&imagePaths, "image", "path to a product photo (repeatable, up to 5)")
		fs.Parse(args[1:])

		images, closeFiles, err := openUploads(imagePaths)
		if err != nil {
			return err
		}
		defer closeFiles()

		product, err := client.CreateProduct(ctx, models.ProductInput{
			Name:        *name,
			Description: *description,
			Price:       *price,
			Images:      images,
		})
		if err != nil {
			return err
		}
		return printJSON(product)

	case "update":
		fs := flag.NewFlagSet("products update", flag.ExitOnError)
		id := fs.Int64("id", 0, "product id")
		name := fs.String("name", "", "new product name")
		description := fs.String("description", "", "new product description")
		price := fs.Float64("price", 0, "new product price")
		var imagePaths stringList
		fs.Var(&imagePaths, "image", "path to a replacement photo (repeatable, up to 5)")
		fs.Parse(args[1:])

		set := visitedFlags(fs)

		images, closeFiles, err := openUploads(imagePaths)
		if err != nil {
			return err
		}
		defer closeFiles()

		input := models.ProductUpdateInput{ID: *id, Images: images}
		if set["name"] {
			input.Name = name
		}
		if set["description"] {
			input.Description = description
		}
		if set["price"] {
			input.Price = price
		}

		product, err := client.UpdateProduct(ctx, input)
		if err != nil {
			return err
		}
		return printJSON(product)

	case "delete":
		fs := flag.NewFlagSet("products delete", flag.ExitOnError)
		id := fs.Int64("id", 0, "product id")
		fs.Parse(args[1:])

		if err := client.DeleteProduct(ctx, *id); err != nil {
			return err
		}
		fmt.Println("product deleted")
		return nil

	default:
		return fmt.Errorf("products: unknown subcommand %q", args[0])
	}
}

func runCreations(ctx context.Context, client apiclient.AdminClient, args []string) error {
	if len(args) == 0 {
		return errors.New("creations: expected list, add, update or delete")
	}

	switch args[0] {
	case "list":
		creations, err := client.ListCreations(ctx)
		if err != nil {
			return err
		}
		return printJSON(creations)

	case "add":
		fs := flag.NewFlagSet("creations add", flag.ExitOnError)
		name := fs.String("name", "", "creation name")
		description := fs.String("description", "", "creation description")
		var imagePaths stringList
		fs.Var(&imagePaths, "image", "path to a photo (repeatable, up to 5)")
		fs.Parse(args[1:])

		images, closeFiles, err := openUploads(imagePaths)
		if err != nil {
			return err
		}
		defer closeFiles()

		creation, err := client.CreateCreation(ctx, models.CreationInput{
			Name:        *name,
			Description: *description,
			Images:      images,
		})
		if err != nil {
			return err
		}
		return printJSON(creation)

	case "update":
		fs := flag.NewFlagSet("creations update", flag.ExitOnError)
		id := fs.Int64("id", 0, "creation id")
		name := fs.String("name", "", "new creation name")
		description := fs.String("description", "", "new creation description")
		var imagePaths stringList
		fs.Var(&imagePaths, "image", "path to a replacement photo (repeatable, up to 5)")
		fs.Parse(args[1:])

		set := visitedFlags(fs)

		images, closeFiles, err := openUploads(imagePaths)
		if err != nil {
			return err
		}
		defer closeFiles()

		input := models.CreationUpdateInput{ID: *id, Images: images}
		if set["name"] {
			input.Name = name
		}
		if set["description"] {
			input.Description = description
		}

		creation, err := client.UpdateCreation(ctx, input)
		if err != nil {
			return err
		}
		return printJSON(creation)

	case "delete":
		fs := flag.NewFlagSet("creations delete", flag.ExitOnError)
		id := fs.Int64("id", 0, "creation id")
		fs.Parse(args[1:])

		if err := client.DeleteCreation(ctx, *id); err != nil {
			return err
		}
		fmt.Println("creation deleted")
		return nil

	default:
		return fmt.Errorf("creations: unknown subcommand %q", args[0])
	}
}

func runTutorials(ctx context.Context, client apiclient.AdminClient, args []string) error {
	if len(args) == 0 {
		return errors.New("tutorials: expected list, add, update or delete")
	}

	switch args[0] {
	case "list":
		tutorials, err := client.ListTutorials(ctx)
		if err != nil {
			return err
		}
		return printJSON(tutorials)

	case "add":
		fs := flag.NewFlagSet("tutorials add", flag.ExitOnError)
		title := fs.String("title", "", "tutorial title")
		description := fs.String("description", "", "tutorial description")
		videoPath := fs.String("video", "", "path to the tutorial video (required)")
		thumbnailPath := fs.String("thumbnail", "", "path to the thumbnail image")
		fs.Parse(args[1:])

		video, closeVideo, err := openUpload(*videoPath)
		if err != nil {
			return err
		}
		defer closeVideo()

		thumbnail, closeThumbnail, err := openUpload(*thumbnailPath)
		if err != nil {
			return err
		}
		defer closeThumbnail()

		tutorial, err := client.CreateTutorial(ctx, models.TutorialInput{
			Title:       *title,
			Description: *description,
			Video:       video,
			Thumbnail:   thumbnail,
		})
		if err != nil {
			return err
		}
		return printJSON(tutorial)

	case "update":
		fs := flag.NewFlagSet("tutorials update", flag.ExitOnError)
		id := fs.Int64("id", 0, "tutorial id")
		title := fs.String("title", "", "new tutorial title")
		description := fs.String("description", "", "new tutorial description")
		videoPath := fs.String("video", "", "path to a replacement video")
		thumbnailPath := fs.String("thumbnail", "", "path to a replacement thumbnail")
		fs.Parse(args[1:])

		set := visitedFlags(fs)

		video, closeVideo, err := openUpload(*videoPath)
		if err != nil {
			return err
		}
		defer closeVideo()

		thumbnail, closeThumbnail, err := openUpload(*thumbnailPath)
		if err != nil {
			return err
		}
		defer closeThumbnail()

		input := models.TutorialUpdateInput{ID: *id, Video: video, Thumbnail: thumbnail}
		if set["title"] {
			input.Title = title
		}
		if set["description"] {
			input.Description = description
		}

		tutorial, err := client.UpdateTutorial(ctx, input)
		if err != nil {
			return err
		}
		return printJSON(tutorial)

	case "delete":
		fs := flag.NewFlagSet("tutorials delete", flag.ExitOnError)
		id := fs.Int64("id", 0, "tutorial id")
		fs.Parse(args[1:])

		if err := client.DeleteTutorial(ctx, *id); err != nil {
			return err
		}
		fmt.Println("tutorial deleted")
		return nil

	default:
		return fmt.Errorf("tutorials: unknown subcommand %q", args[0])
	}
}

// stringList collects repeatable string flags.
type stringList []string

func (l *stringList) String() string { return fmt.Sprint(*l) }

func (l *stringList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// visitedFlags reports which flags were explicitly set on the command line,
// so that updates can tell "not provided" apart from a zero value.
func visitedFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

func openUploads(paths []string) ([]models.FileUpload, func(), error) {
	uploads := make([]models.FileUpload, 0, len(paths))
	closers := make([]func() error, 0, len(paths))

	closeAll := func() {
		for _, close := range closers {
			close()
		}
	}

	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			closeAll()
			return nil, func() {}, fmt.Errorf("open %s: %w", path, err)
		}
		closers = append(closers, f.Close)
		uploads = append(uploads, models.FileUpload{Name: filepath.Base(path), Content: f})
	}

	return uploads, closeAll, nil
}

func openUpload(path string) (*models.FileUpload, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, func() {}, fmt.Errorf("open %s: %w", path, err)
	}

	return &models.FileUpload{Name: filepath.Base(path), Content: f}, func() { f.Close() }, nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".atelierctl.db"
	}
	return filepath.Join(home, ".atelierctl.db")
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "atelierctl: "+format+"\n", args...)
	os.Exit(1)
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: atelierctl [-server URL] [-session PATH] <command>

commands:
  login      -email EMAIL -password PASSWORD
  logout
  status
  products   list | add | update | delete
  creations  list | add | update | delete
  tutorials  list | add | update | delete
  version`)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
