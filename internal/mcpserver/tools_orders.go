package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/vikkysarswat/dhan-mcp-server/internal/models"
)

func (s *Server) registerOrderTools() {
	s.mcp.AddTool(mcp.NewTool("place_order",
		mcp.WithDescription("Place a new trading order"),
		mcp.WithString("transaction_type",
			mcp.Required(),
			mcp.Description("BUY or SELL"),
			mcp.Enum("BUY", "SELL"),
		),
		mcp.WithString("exchange_segment",
			mcp.Required(),
			mcp.Description("Exchange segment of the instrument"),
			mcp.Enum(segmentValues()...),
		),
		mcp.WithString("product_type",
			mcp.Required(),
			mcp.Description("Product type the order is booked under"),
			mcp.Enum(productValues()...),
		),
		mcp.WithString("order_type",
			mcp.Required(),
			mcp.Description("Order execution style"),
			mcp.Enum(orderTypeValues()...),
		),
		mcp.WithString("security_id",
			mcp.Required(),
			mcp.Description("Numeric security id of the instrument"),
		),
		mcp.WithNumber("quantity",
			mcp.Required(),
			mcp.Description("Number of shares or lots"),
		),
		mcp.WithNumber("price",
			mcp.Description("Limit price, required for LIMIT and STOP_LOSS orders"),
		),
		mcp.WithNumber("trigger_price",
			mcp.Description("Trigger price, required for STOP_LOSS and STOP_LOSS_MARKET orders"),
		),
		mcp.WithString("validity",
			mcp.Description("DAY or IOC, defaults to DAY"),
			mcp.Enum("DAY", "IOC"),
		),
		mcp.WithNumber("disclosed_quantity",
			mcp.Description("Quantity disclosed to the exchange"),
		),
		mcp.WithBoolean("after_market_order",
			mcp.Description("Queue the order for the next session"),
		),
		mcp.WithString("amo_time",
			mcp.Description("After-market release timing"),
			mcp.Enum("PRE_OPEN", "OPEN", "OPEN_30", "OPEN_60"),
		),
		mcp.WithNumber("bo_profit_value",
			mcp.Description("Bracket order profit target"),
		),
		mcp.WithNumber("bo_stop_loss_value",
			mcp.Description("Bracket order stop loss"),
		),
		mcp.WithString("correlation_id",
			mcp.Description("Caller-supplied tag for tracking the order"),
		),
	), s.handlePlaceOrder)

	s.mcp.AddTool(mcp.NewTool("slice_order",
		mcp.WithDescription("Place an order sliced into multiple legs when the quantity exceeds the exchange freeze limit"),
		mcp.WithString("transaction_type",
			mcp.Required(),
			mcp.Enum("BUY", "SELL"),
		),
		mcp.WithString("exchange_segment",
			mcp.Required(),
			mcp.Enum(segmentValues()...),
		),
		mcp.WithString("product_type",
			mcp.Required(),
			mcp.Enum(productValues()...),
		),
		mcp.WithString("order_type",
			mcp.Required(),
			mcp.Enum(orderTypeValues()...),
		),
		mcp.WithString("security_id",
			mcp.Required(),
			mcp.Description("Numeric security id of the instrument"),
		),
		mcp.WithNumber("quantity",
			mcp.Required(),
			mcp.Description("Total quantity across all legs"),
		),
		mcp.WithNumber("price"),
		mcp.WithNumber("trigger_price"),
		mcp.WithString("validity",
			mcp.Enum("DAY", "IOC"),
		),
		mcp.WithString("correlation_id"),
	), s.handleSliceOrder)

	s.mcp.AddTool(mcp.NewTool("modify_order",
		mcp.WithDescription("Modify a pending order's price, quantity or type"),
		mcp.WithString("order_id",
			mcp.Required(),
			mcp.Description("Broker order id"),
		),
		mcp.WithString("order_type",
			mcp.Required(),
			mcp.Enum(orderTypeValues()...),
		),
		mcp.WithNumber("quantity",
			mcp.Description("New quantity"),
		),
		mcp.WithNumber("price",
			mcp.Description("New limit price"),
		),
		mcp.WithNumber("trigger_price",
			mcp.Description("New trigger price"),
		),
		mcp.WithNumber("disclosed_quantity"),
		mcp.WithString("validity",
			mcp.Enum("DAY", "IOC"),
		),
		mcp.WithString("leg_name",
			mcp.Description("Bracket/cover order leg being modified"),
			mcp.Enum("ENTRY_LEG", "TARGET_LEG", "STOP_LOSS_LEG"),
		),
	), s.handleModifyOrder)

	s.mcp.AddTool(mcp.NewTool("cancel_order",
		mcp.WithDescription("Cancel a pending order"),
		mcp.WithString("order_id",
			mcp.Required(),
			mcp.Description("Broker order id"),
		),
	), s.handleCancelOrder)

	s.mcp.AddTool(mcp.NewTool("get_orders",
		mcp.WithDescription("Get the order book for the day"),
	), s.handleGetOrders)

	s.mcp.AddTool(mcp.NewTool("get_order_by_id",
		mcp.WithDescription("Get the status of a specific order"),
		mcp.WithString("order_id",
			mcp.Required(),
			mcp.Description("Broker order id"),
		),
	), s.handleGetOrderByID)

	s.mcp.AddTool(mcp.NewTool("get_order_by_correlation_id",
		mcp.WithDescription("Look an order up by the correlation id supplied at placement"),
		mcp.WithString("correlation_id",
			mcp.Required(),
			mcp.Description("Caller-supplied order tag"),
		),
	), s.handleGetOrderByCorrelationID)
}

// bindOrderRequest maps tool arguments onto an order payload. Validation
// happens in the client before anything touches the network.
func bindOrderRequest(args map[string]any) (*models.OrderRequest, error) {
	req := &models.OrderRequest{}

	txn, err := requireString(args, "transaction_type")
	if err != nil {
		return nil, err
	}
	req.TransactionType = models.TransactionType(txn)

	segment, err := requireString(args, "exchange_segment")
	if err != nil {
		return nil, err
	}
	req.ExchangeSegment = models.ExchangeSegment(segment)

	product, err := requireString(args, "product_type")
	if err != nil {
		return nil, err
	}
	req.ProductType = models.ProductType(product)

	orderType, err := requireString(args, "order_type")
	if err != nil {
		return nil, err
	}
	req.OrderType = models.OrderType(orderType)

	if req.SecurityID, err = requireString(args, "security_id"); err != nil {
		return nil, err
	}
	if req.Quantity, err = requireInt(args, "quantity"); err != nil {
		return nil, err
	}
	if req.Price, err = optFloat(args, "price", 0); err != nil {
		return nil, err
	}
	if req.TriggerPrice, err = optFloat(args, "trigger_price", 0); err != nil {
		return nil, err
	}
	validity, err := optString(args, "validity", string(models.ValidityDay))
	if err != nil {
		return nil, err
	}
	req.Validity = models.Validity(validity)

	if req.DisclosedQuantity, err = optInt(args, "disclosed_quantity", 0); err != nil {
		return nil, err
	}
	if req.AfterMarketOrder, err = optBool(args, "after_market_order", false); err != nil {
		return nil, err
	}
	amoTime, err := optString(args, "amo_time", "")
	if err != nil {
		return nil, err
	}
	req.AMOTime = models.AMOTime(amoTime)

	if req.BOProfitValue, err = optFloat(args, "bo_profit_value", 0); err != nil {
		return nil, err
	}
	if req.BOStopLossValue, err = optFloat(args, "bo_stop_loss_value", 0); err != nil {
		return nil, err
	}
	if req.CorrelationID, err = optString(args, "correlation_id", ""); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *Server) handlePlaceOrder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	order, err := bindOrderRequest(req.GetArguments())
	if err != nil {
		return s.toolError("place_order", err)
	}
	resp, err := s.api.PlaceOrder(ctx, order)
	if err != nil {
		return s.toolError("place_order", err)
	}
	return jsonResult(resp)
}

func (s *Server) handleSliceOrder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	order, err := bindOrderRequest(req.GetArguments())
	if err != nil {
		return s.toolError("slice_order", err)
	}
	sliced := models.SliceOrderRequest(*order)
	resp, err := s.api.SliceOrder(ctx, &sliced)
	if err != nil {
		return s.toolError("slice_order", err)
	}
	return jsonResult(resp)
}

func (s *Server) handleModifyOrder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	modify := &models.ModifyOrderRequest{}

	var err error
	if modify.OrderID, err = requireString(args, "order_id"); err != nil {
		return s.toolError("modify_order", err)
	}
	orderType, err := requireString(args, "order_type")
	if err != nil {
		return s.toolError("modify_order", err)
	}
	modify.OrderType = models.OrderType(orderType)

	if modify.Quantity, err = optInt(args, "quantity", 0); err != nil {
		return s.toolError("modify_order", err)
	}
	if modify.Price, err = optFloat(args, "price", 0); err != nil {
		return s.toolError("modify_order", err)
	}
	if modify.TriggerPrice, err = optFloat(args, "trigger_price", 0); err != nil {
		return s.toolError("modify_order", err)
	}
	if modify.DisclosedQuantity, err = optInt(args, "disclosed_quantity", 0); err != nil {
		return s.toolError("modify_order", err)
	}
	validity, err := optString(args, "validity", string(models.ValidityDay))
	if err != nil {
		return s.toolError("modify_order", err)
	}
	modify.Validity = models.Validity(validity)

	legName, err := optString(args, "leg_name", "")
	if err != nil {
		return s.toolError("modify_order", err)
	}
	modify.LegName = models.LegName(legName)

	resp, err := s.api.ModifyOrder(ctx, modify)
	if err != nil {
		return s.toolError("modify_order", err)
	}
	return jsonResult(resp)
}

func (s *Server) handleCancelOrder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	orderID, err := requireString(req.GetArguments(), "order_id")
	if err != nil {
		return s.toolError("cancel_order", err)
	}
	resp, err := s.api.CancelOrder(ctx, orderID)
	if err != nil {
		return s.toolError("cancel_order", err)
	}
	return jsonResult(resp)
}

func (s *Server) handleGetOrders(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	orders, err := s.api.GetOrders(ctx)
	if err != nil {
		return s.toolError("get_orders", err)
	}
	return jsonResult(orders)
}

func (s *Server) handleGetOrderByID(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	orderID, err := requireString(req.GetArguments(), "order_id")
	if err != nil {
		return s.toolError("get_order_by_id", err)
	}
	order, err := s.api.GetOrderByID(ctx, orderID)
	if err != nil {
		return s.toolError("get_order_by_id", err)
	}
	return jsonResult(order)
}

func (s *Server) handleGetOrderByCorrelationID(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	correlationID, err := requireString(req.GetArguments(), "correlation_id")
	if err != nil {
		return s.toolError("get_order_by_correlation_id", err)
	}
	order, err := s.api.GetOrderByCorrelationID(ctx, correlationID)
	if err != nil {
		return s.toolError("get_order_by_correlation_id", err)
	}
	return jsonResult(order)
}
