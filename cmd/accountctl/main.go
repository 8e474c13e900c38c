// Command accountctl registers an account against a running server. The
// password is read from the terminal so it never lands in shell history.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
)

type createRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Position string `json:"position"`
}

type createResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
	Slug  string `json:"slug"`
	Error string `json:"error"`
}

func main() {
	addr := flag.String("addr", "http://localhost:8080", "server base URL")
	email := flag.String("email", "", "account email")
	fullName := flag.String("name", "", "full name")
	position := flag.String("position", "", "position or title")
	flag.Parse()

	if *email == "" || *fullName == "" {
		flag.Usage()
		os.Exit(2)
	}

	fmt.Fprint(os.Stderr, "Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		log.Fatalf("error reading password: %v", err)
	}
	if len(password) == 0 {
		log.Fatal("password must not be empty")
	}

	req := createRequest{
		Email:    *email,
		Password: string(password),
		FullName: *fullName,
		Position: *position,
	}

	body, err := json.Marshal(req)
	if err != nil {
		log.Fatalf("error encoding request: %v", err)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	url := strings.TrimRight(*addr, "/") + "/api/v1/auth/create"

	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	var result createResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Fatalf("error decoding response: %v", err)
	}

	if resp.StatusCode != http.StatusCreated {
		log.Fatalf("server returned %s: %s", resp.Status, result.Error)
	}

	fmt.Printf("created account %s (%s), role %s, slug %s\n", result.Email, result.ID, result.Role, result.Slug)
	fmt.Printf("token: %s\n", result.Token)
}
