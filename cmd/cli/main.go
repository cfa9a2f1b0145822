package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "shopdesk-cli",
		Short: "Shopdesk CLI tool",
		Long:  `A command line interface for interacting with the Shopdesk API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the Shopdesk API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(invoiceCmd(), ledgerCmd(), balanceCmd(), withdrawCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func invoiceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "invoice <order-id>",
		Short: "Fetch the invoice for an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := getJSON(fmt.Sprintf("%s/api/v1/orders/%s/invoice", baseURL, args[0]))
			if err != nil {
				return err
			}
			printJSON(body)
			return nil
		},
	}
}

func ledgerCmd() *cobra.Command {
	var (
		limit           int
		offset          int
		startingBalance string
	)

	cmd := &cobra.Command{
		Use:   "ledger <account-id>",
		Short: "View the running-balance ledger for an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := fmt.Sprintf("%s/api/v1/accounts/%s/transactions?limit=%d&offset=%d", baseURL, args[0], limit, offset)
			if startingBalance != "" {
				url += "&starting_balance=" + startingBalance
			}

			body, err := getJSON(url)
			if err != nil {
				return err
			}

			var page struct {
				Transactions []struct {
					ID             string `json:"id"`
					Type           string `json:"type"`
					Amount         string `json:"amount"`
					Reference      string `json:"reference"`
					RunningBalance string `json:"running_balance"`
				} `json:"transactions"`
				Total int64 `json:"total"`
			}
			if err := json.Unmarshal(body, &page); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			fmt.Printf("%-28s %-8s %12s %12s  %s\n", "ID", "TYPE", "AMOUNT", "BALANCE", "REFERENCE")
			for _, tx := range page.Transactions {
				fmt.Printf("%-28s %-8s %12s %12s  %s\n",
					truncate(tx.ID, 28), tx.Type, tx.Amount, tx.RunningBalance, truncate(tx.Reference, 40))
			}
			fmt.Printf("total: %d\n", page.Total)

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "Page offset")
	cmd.Flags().StringVar(&startingBalance, "starting-balance", "", "Seed balance for pages past the first")

	return cmd
}

func balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance <employee-id>",
		Short: "Show an employee's withdrawable incentive balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := getJSON(fmt.Sprintf("%s/api/v1/employees/%s/incentives/balance", baseURL, args[0]))
			if err != nil {
				return err
			}
			printJSON(body)
			return nil
		},
	}
}

func withdrawCmd() *cobra.Command {
	var (
		amount string
		reason string
	)

	cmd := &cobra.Command{
		Use:   "withdraw <employee-id>",
		Short: "Withdraw from an employee's incentive balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, _ := json.Marshal(map[string]string{
				"amount": amount,
				"reason": reason,
			})

			client := &http.Client{Timeout: timeout}
			url := fmt.Sprintf("%s/api/v1/employees/%s/withdrawals", baseURL, args[0])
			resp, err := client.Post(url, "application/json", strings.NewReader(string(payload)))
			if err != nil {
				return fmt.Errorf("request failed: %w", err)
			}
			defer resp.Body.Close()

			body, _ := io.ReadAll(resp.Body)
			if resp.StatusCode != http.StatusCreated {
				return fmt.Errorf("withdrawal rejected (status %d): %s", resp.StatusCode, string(body))
			}

			printJSON(body)
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "Amount to withdraw")
	cmd.Flags().StringVar(&reason, "reason", "", "Reason for the withdrawal")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func getJSON(url string) ([]byte, error) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

// printJSON pretty-prints a JSON payload, falling back to raw output
// when the body is not valid JSON.
func printJSON(body []byte) {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		fmt.Println(string(body))
		return
	}

	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println(string(body))
		return
	}
	fmt.Println(string(out))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
