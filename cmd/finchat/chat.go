package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/findosh/finchat/internal/client"
	"github.com/findosh/finchat/internal/models"
	"github.com/findosh/finchat/internal/services/suggest"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Start an interactive chat session. Each line is sent as one question.

Commands:
  /suggest [topic]  list sample questions, optionally filtered
  /history          show this session's transcript
  /quit             leave the session`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		local, _ := cmd.Flags().GetBool("local")
		raw, _ := cmd.Flags().GetBool("raw")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := cliLogger(cfg)

		c, closeFn, err := newClient(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer closeFn()

		catalog, err := suggest.Default()
		if err != nil {
			return err
		}

		s := &chatSession{
			client:  c,
			catalog: catalog,
			local:   local,
			raw:     raw,
			out:     cmd.OutOrStdout(),
		}
		return s.run(cmd.Context(), cmd.InOrStdin())
	},
}

func init() {
	chatCmd.Flags().Bool("local", false, "answer in-process without calling the API")
	chatCmd.Flags().Bool("raw", false, "print plain answer text")
}

// chatSession is one REPL run. The transcript is display history only.
type chatSession struct {
	client     *client.Client
	catalog    *suggest.Catalog
	transcript models.Transcript
	local      bool
	raw        bool
	out        io.Writer
}

func (s *chatSession) run(ctx context.Context, in io.Reader) error {
	fmt.Fprintln(s.out, "Ask about Bajaj Finserv results. Type /suggest for ideas or /quit to leave.")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, promptStyle.Render("you> "))
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == "/quit" || line == "/exit":
			return nil
		case line == "/history":
			s.printHistory()
			continue
		case line == "/suggest" || strings.HasPrefix(line, "/suggest "):
			s.printSuggestions(strings.TrimSpace(strings.TrimPrefix(line, "/suggest")))
			continue
		}

		s.transcript.Append(models.TurnUser, line)
		env, err := ask(ctx, s.client, line, s.local)
		if err != nil {
			fmt.Fprintln(s.out, errStyle.Render("Sorry, I couldn't answer that: "+err.Error()))
			continue
		}
		s.transcript.Append(models.TurnBot, env.Response)

		fmt.Fprintln(s.out, formatEnvelope(env, s.raw))
		fmt.Fprintln(s.out)
	}
}

func (s *chatSession) printHistory() {
	if s.transcript.Len() == 0 {
		fmt.Fprintln(s.out, metaStyle.Render("No messages yet."))
		return
	}
	for _, turn := range s.transcript.Turns() {
		fmt.Fprintf(s.out, "%s %s\n", labelStyle.Render(string(turn.Type)+":"), turn.Content)
	}
}

func (s *chatSession) printSuggestions(topic string) {
	questions := s.catalog.Find(topic, 6)
	if len(questions) == 0 {
		fmt.Fprintln(s.out, metaStyle.Render("No sample questions match "+topic))
		return
	}
	texts := make([]string, len(questions))
	for i, q := range questions {
		texts[i] = q.Text
	}
	fmt.Fprintln(s.out, formatSuggestions(texts))
}

func ask(ctx context.Context, c *client.Client, question string, local bool) (*models.ResponseEnvelope, error) {
	if local {
		return c.Local(question)
	}
	return c.Ask(ctx, question)
}
