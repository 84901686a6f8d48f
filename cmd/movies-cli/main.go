// Команда movies-cli — консольный клиент сервиса фильмов.
//
// Поддерживает вход с сохранением токена между запусками, просмотр
// каталога и комментариев, голосование и комментирование. Пароль
// запрашивается без эха в терминале.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/magabrotheeeer/portfolio-backend/internal/client"
)

func main() {
	baseURL := flag.String("server", "http://localhost:8080/api/v1", "адрес сервера")
	sessionPath := flag.String("session", "", "путь к файлу сессии")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *baseURL, *sessionPath, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, baseURL, sessionPath string, args []string) error {
	if len(args) == 0 {
		usage()
		return nil
	}

	api := client.NewAPI(baseURL)
	store, err := client.NewSessionFile(sessionPath)
	if err != nil {
		return err
	}

	// Сохраненная сессия восстанавливается в состояние authenticated
	machine := client.NewMachine()
	if saved, err := store.Load(); err == nil {
		machine = client.Restore(saved)
	}

	switch args[0] {
	case "login":
		return login(ctx, api, store, machine)
	case "register":
		return register(ctx, api, store, machine)
	case "logout":
		return logout(machine, store)
	case "whoami":
		return whoami(machine)
	case "movies":
		return listMovies(ctx, api)
	case "comments":
		return listComments(ctx, api, args[1:])
	case "comment":
		return comment(ctx, api, machine, args[1:])
	case "vote":
		return vote(ctx, api, machine, args[1:])
	default:
		usage()
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func usage() {
	fmt.Println(`usage: movies-cli [flags] <command>

commands:
  register            создать пользователя и сразу войти
  login               войти и сохранить токен
  logout              выйти и удалить токен
  whoami              показать текущего пользователя
  movies              показать каталог
  comments <movie>    показать комментарии к фильму
  comment <movie> <text>  оставить комментарий
  vote <movie> <like|dislike>  проголосовать`)
}

func prompt(label string) (string, error) {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	value, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

func promptPassword(label string) (string, error) {
	fmt.Print(label)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func login(ctx context.Context, api *client.API, store *client.SessionFile, machine *client.Machine) error {
	if machine.State() == client.StateAuthenticated {
		fmt.Printf("already logged in as %s\n", machine.Session().Username)
		return nil
	}

	username, err := prompt("username: ")
	if err != nil {
		return err
	}
	password, err := promptPassword("password: ")
	if err != nil {
		return err
	}

	if err := machine.Submit(); err != nil {
		return err
	}
	session, err := api.Login(ctx, username, password)
	if err != nil {
		_ = machine.Failure(err.Error())
		if errors.Is(err, client.ErrUnauthorized) {
			return errors.New("invalid credentials")
		}
		return err
	}
	if err := machine.Success(session); err != nil {
		return err
	}
	if err := store.Save(session); err != nil {
		return err
	}

	fmt.Printf("logged in as %s\n", session.Username)
	return nil
}

func register(ctx context.Context, api *client.API, store *client.SessionFile, machine *client.Machine) error {
	if machine.State() == client.StateAuthenticated {
		fmt.Printf("already logged in as %s\n", machine.Session().Username)
		return nil
	}

	username, err := prompt("username: ")
	if err != nil {
		return err
	}
	email, err := prompt("email (optional): ")
	if err != nil {
		return err
	}
	password, err := promptPassword("password: ")
	if err != nil {
		return err
	}

	// Регистрация сразу логинит: сервер возвращает токен вместе с записью
	if err := machine.Submit(); err != nil {
		return err
	}
	session, err := api.Register(ctx, username, email, password)
	if err != nil {
		_ = machine.Failure(err.Error())
		return err
	}
	if err := machine.Success(session); err != nil {
		return err
	}
	if err := store.Save(session); err != nil {
		return err
	}

	fmt.Printf("registered and logged in as %s\n", session.Username)
	return nil
}

func logout(machine *client.Machine, store *client.SessionFile) error {
	if machine.State() != client.StateAuthenticated {
		fmt.Println("not logged in")
		return nil
	}
	if err := machine.Logout(); err != nil {
		return err
	}
	if err := store.Clear(); err != nil {
		return err
	}
	fmt.Println("logged out")
	return nil
}

func whoami(machine *client.Machine) error {
	if machine.State() != client.StateAuthenticated {
		fmt.Println("not logged in")
		return nil
	}
	session := machine.Session()
	fmt.Printf("%s (%s)\n", session.Username, session.Role)
	return nil
}

func listMovies(ctx context.Context, api *client.API) error {
	movies, err := api.Movies(ctx)
	if err != nil {
		return err
	}
	for _, m := range movies {
		fmt.Printf("%2d  %s (%d)  %.1f  %s\n", m.ID, m.Title, m.Year, m.Rating, m.Genre)
	}
	return nil
}

func movieArg(args []string) (int, error) {
	if len(args) < 1 {
		return 0, errors.New("movie id required")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid movie id: %s", args[0])
	}
	return id, nil
}

func listComments(ctx context.Context, api *client.API, args []string) error {
	movieID, err := movieArg(args)
	if err != nil {
		return err
	}
	comments, err := api.Comments(ctx, movieID)
	if err != nil {
		return err
	}
	if len(comments) == 0 {
		fmt.Println("no comments yet")
		return nil
	}
	for _, c := range comments {
		fmt.Printf("[%s] %s: %s\n", c.CreatedAt.Format("02-01-2006 15:04"), c.AuthorName, c.Text)
	}
	return nil
}

func requireAuth(machine *client.Machine) (string, error) {
	if machine.State() != client.StateAuthenticated {
		return "", errors.New("not logged in, run: movies-cli login")
	}
	return machine.Session().Token, nil
}

func comment(ctx context.Context, api *client.API, machine *client.Machine, args []string) error {
	movieID, err := movieArg(args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return errors.New("comment text required")
	}
	token, err := requireAuth(machine)
	if err != nil {
		return err
	}

	created, err := api.Comment(ctx, token, movieID, strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	fmt.Printf("comment %s created\n", created.ID)
	return nil
}

func vote(ctx context.Context, api *client.API, machine *client.Machine, args []string) error {
	movieID, err := movieArg(args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return errors.New("action required: like or dislike")
	}
	token, err := requireAuth(machine)
	if err != nil {
		return err
	}

	counter, err := api.Vote(ctx, token, movieID, args[1])
	if err != nil {
		return err
	}
	fmt.Printf("likes: %d, dislikes: %d\n", counter.Likes, counter.Dislikes)
	return nil
}
