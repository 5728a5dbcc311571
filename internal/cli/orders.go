package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/STTM-NSU/forex-cli/internal/model"
	"github.com/STTM-NSU/forex-cli/internal/tools"
	"github.com/spf13/cobra"
)

const (
	_maxOrdersCount = 500
	_clientTag      = "forex-cli"
)

var orderStates = []string{"PENDING", "FILLED", "TRIGGERED", "CANCELLED", "ALL"}

func (a *app) ordersCommand() *cobra.Command {
	var (
		state string
		count int
	)
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List order history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state = strings.ToUpper(state)
			if !slices.Contains(orderStates, state) {
				return userErrorf("unknown order state %q, expected one of %s", state, strings.Join(orderStates, ", "))
			}
			if count <= 0 || count > _maxOrdersCount {
				return userErrorf("count must be between 1 and %d", _maxOrdersCount)
			}

			orders, err := a.broker.Orders(cmd.Context(), state, count)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(orders))
			for _, o := range orders {
				rows = append(rows, []string{o.ID, o.Instrument, o.Units, o.Price, o.State, o.Type})
			}
			printTable(cmd.OutOrStdout(), []string{"id", "instrument", "units", "price", "state", "type"}, rows)
			return nil
		},
	}
	cmd.Flags().StringVarP(&state, "state", "s", "ALL", "order state: "+strings.Join(orderStates, ", "))
	cmd.Flags().IntVarP(&count, "count", "c", 50, "number of orders")
	return cmd
}

func (a *app) pendingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "List pending orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := a.broker.PendingOrders(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, o := range orders {
				fmt.Fprintf(w, "Order ID: %s\n", o.ID)
				fmt.Fprintf(w, "Instrument: %s\n", o.Instrument)
				fmt.Fprintf(w, "Price: %s\n", o.Price)
				fmt.Fprintf(w, "Units: %s\n", o.Units)
				fmt.Fprintf(w, "Time created: %s\n", o.CreateTime)
				fmt.Fprintf(w, "Time in force: %s\n", o.TimeInForce)
				fmt.Fprintln(w, separator)
			}
			return nil
		},
	}
}

func (a *app) orderCommand() *cobra.Command {
	var (
		units     int64
		price     float64
		precision int32
	)
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Create a limit order, good till cancelled",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if units == 0 {
				return userErrorf("units are required and must not be zero, negative units sell")
			}
			if price <= 0 {
				return userErrorf("price is required and must be positive")
			}
			p, err := tools.FormatPrice(price, precision)
			if err != nil {
				return userErrorf("%s", err)
			}

			clientID := a.newID()
			resp, err := a.broker.CreateLimitOrder(cmd.Context(), model.LimitOrder{
				Type:         model.OrderTypeLimit,
				Instrument:   a.instrument,
				Units:        tools.FormatUnits(units),
				Price:        p,
				TimeInForce:  model.GoodTillCancelled,
				PositionFill: "DEFAULT",
				ClientExtensions: &model.ClientExtensions{
					ID:  clientID,
					Tag: _clientTag,
				},
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			tx := resp.OrderCreateTransaction
			fmt.Fprintf(w, "Order ID: %s\n", tx.ID)
			fmt.Fprintf(w, "Client ID: %s\n", clientID)
			fmt.Fprintf(w, "Instrument: %s\n", a.instrument)
			fmt.Fprintf(w, "Units: %s\n", tools.FormatUnits(units))
			fmt.Fprintf(w, "Price: %s\n", p)
			if fill := resp.OrderFillTransaction; fill != nil {
				fmt.Fprintf(w, "Filled by transaction %s\n", fill.ID)
			}
			if cancel := resp.OrderCancelTransaction; cancel != nil {
				fmt.Fprintf(w, "Cancelled: %s\n", cancel.Reason)
			}
			return nil
		},
	}
	cmd.Flags().Int64VarP(&units, "units", "u", 0, "order units, negative to sell")
	cmd.Flags().Float64VarP(&price, "price", "p", 0, "limit price")
	cmd.Flags().Int32Var(&precision, "precision", 5, "price decimals of the instrument")
	return cmd
}

func (a *app) cancelCommand() *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel a pending order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if id == "" {
				return userErrorf("order id is required")
			}

			tx, err := a.broker.CancelOrder(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Order %s cancelled: %s\n", id, tx.Reason)
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "order id")
	return cmd
}
