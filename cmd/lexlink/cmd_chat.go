package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lexlink/lexlink-cli/cmd/lexlink/chat"
	"github.com/lexlink/lexlink-cli/model"
)

func chatCmd() *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the legal assistant",
		Long:  "Opens an interactive conversation with the legal assistant.\nUse --session to continue a stored conversation.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if _, err := a.requireAuth(); err != nil {
				return err
			}

			var history []model.ChatMessage
			if sessionID != "" {
				history, err = a.client.GetChatHistory(cmd.Context(), sessionID)
				if err != nil {
					return err
				}
			}
			return chat.Run(a.client, sessionID, history)
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "session ID to continue")
	cmd.AddCommand(chatAskCmd(), chatSessionsCmd(), chatHistoryCmd(), chatRmCmd())
	return cmd
}

func chatAskCmd() *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "ask <question...>",
		Short: "Ask a single question and print the answer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if _, err := a.requireAuth(); err != nil {
				return err
			}

			resp, err := a.client.AskQuestion(cmd.Context(), strings.Join(args, " "), sessionID)
			if err != nil {
				return err
			}
			fmt.Println(resp.Answer)
			fmt.Println(faintStyle.Render("session: " + resp.SessionID))
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "session ID to continue")
	return cmd
}

func chatSessionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sessions",
		Short: "List stored conversations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if _, err := a.requireAuth(); err != nil {
				return err
			}

			sessions, err := a.client.GetChatSessions(cmd.Context())
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Println(faintStyle.Render("no stored conversations"))
				return nil
			}
			for _, s := range sessions {
				fmt.Printf("  %s  %s\n", faintStyle.Render(s.SessionID), s.Title)
				if s.LastMessagePreview != "" {
					fmt.Printf("    %s\n", faintStyle.Render(s.LastMessagePreview))
				}
			}
			return nil
		},
	}
}

func chatHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <session-id>",
		Short: "Print the messages of one conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if _, err := a.requireAuth(); err != nil {
				return err
			}

			messages, err := a.client.GetChatHistory(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, msg := range messages {
				fmt.Printf("%s\n%s\n\n", labelStyle.Render(msg.Role), msg.Content)
			}
			return nil
		},
	}
}

func chatRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <session-id>",
		Short: "Delete a conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if _, err := a.requireAuth(); err != nil {
				return err
			}

			resp, err := a.client.DeleteChatSession(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s Deleted session %s (%d messages)\n", okStyle.Render("✓"), resp.SessionID, resp.Deleted)
			return nil
		},
	}
}
