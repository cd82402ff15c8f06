package usecase

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type OrderUsecase struct {
	tx repo.TransactionManager
}

func NewOrderUsecase(tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{tx: tx}
}

type CreateOrderItemInput struct {
	ProductID int64
	Quantity  int64
}

type CreateOrderInput struct {
	CustomerID int64
	Items      []CreateOrderItemInput
}

type CreateOrderOutput struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
}

type OrderSummaryOutput struct {
	ID           int64     `json:"id"`
	OrderDate    time.Time `json:"order_date"`
	TotalAmount  float64   `json:"total_amount"`
	Status       string    `json:"status"`
	CustomerName string    `json:"customer_name"`
}

type OrderItemOutput struct {
	ID          int64   `json:"id"`
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int64   `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type OrderDetailOutput struct {
	ID           int64             `json:"id"`
	OrderDate    time.Time         `json:"order_date"`
	TotalAmount  float64           `json:"total_amount"`
	Status       string            `json:"status"`
	CustomerName string            `json:"customer_name"`
	Items        []OrderItemOutput `json:"items"`
}

type OrderStatusOutput struct {
	Status string `json:"status"`
}

type AuditEntryOutput struct {
	ID        int64     `json:"id"`
	Action    string    `json:"action"`
	Before    string    `json:"before"`
	After     string    `json:"after"`
	CreatedAt time.Time `json:"created_at"`
}

// 注文作成。検証がすべて通ってから書き込み、全体を1トランザクションで行う。
func (u *OrderUsecase) Create(ctx context.Context, in CreateOrderInput) (CreateOrderOutput, error) {
	if in.CustomerID <= 0 {
		return CreateOrderOutput{}, NewHTTPError(http.StatusBadRequest, "customer_id required")
	}
	if len(in.Items) == 0 {
		return CreateOrderOutput{}, NewHTTPError(http.StatusBadRequest, "items list is empty")
	}

	//形のチェックは在庫を見る前に全行分
	for _, it := range in.Items {
		if it.ProductID <= 0 || it.Quantity <= 0 {
			return CreateOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product_id or quantity")
		}
	}

	var out CreateOrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//顧客の存在確認
		_, err := r.Customers().FindByID(ctx, in.CustomerID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "customer does not exist")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//商品と在庫を全行検証してから書き込みに入る
		orderItems := make([]model.OrderItem, 0, len(in.Items))
		var total float64 = 0

		for _, it := range in.Items {
			p, err := r.Products().FindByID(ctx, it.ProductID)
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusNotFound, fmt.Sprintf("product_id %d not found", it.ProductID))
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			if p.Stock < it.Quantity {
				return NewHTTPError(http.StatusBadRequest, fmt.Sprintf("not enough stock for product %d", it.ProductID))
			}

			//単価スナップショット
			orderItems = append(orderItems, model.OrderItem{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				UnitPrice: p.Price,
			})
			total += p.Price * float64(it.Quantity)
		}

		//注文作成
		orderID, err := r.Orders().Create(ctx, model.Order{
			CustomerID:  in.CustomerID,
			OrderDate:   time.Now(),
			TotalAmount: total,
			Status:      model.OrderStatusPending,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//明細一括作成
		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//在庫減算。条件付きUPDATEなので同時注文で足りなくなったらここで失敗し、
		//トランザクションごと巻き戻る。
		for _, it := range in.Items {
			ok, err := r.Inventory().DecreaseStockIfEnough(ctx, it.ProductID, it.Quantity)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if !ok {
				return NewHTTPError(http.StatusBadRequest, fmt.Sprintf("not enough stock for product %d", it.ProductID))
			}
		}

		out = CreateOrderOutput{OrderID: orderID, Status: string(model.OrderStatusPending)}
		return nil
	})

	if err != nil {
		return CreateOrderOutput{}, err
	}
	return out, nil
}

// ステータス変更（Processing / Completed）。
// 現在の状態に関係なく目的の値を書く。観測された挙動との互換のため
// ガードは入れていない（キャンセル済み注文にも適用される）。
func (u *OrderUsecase) Transition(ctx context.Context, orderID int64, target model.OrderStatus) (OrderStatusOutput, error) {
	if orderID <= 0 {
		return OrderStatusOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	switch target {
	case model.OrderStatusProcessing, model.OrderStatusCompleted:
	default:
		return OrderStatusOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	var out OrderStatusOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "Order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.Orders().UpdateStatus(ctx, orderID, target); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.AuditLogs().Create(ctx, model.AuditLog{
			Action:       model.AuditActionUpdateOrderStatus,
			ResourceType: model.AuditResourceOrder,
			ResourceID:   orderID,
			BeforeJSON:   statusJSON(o.Status),
			AfterJSON:    statusJSON(target),
			CreatedAt:    time.Now(),
		}); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = OrderStatusOutput{Status: string(target)}
		return nil
	})

	if err != nil {
		return OrderStatusOutput{}, err
	}
	return out, nil
}

// キャンセル。明細の数量どおりに在庫を戻してからCancelledにする。
// 既にCancelledなら何もせずAlreadyCancelledを返す（在庫は二重に戻さない）。
func (u *OrderUsecase) Cancel(ctx context.Context, orderID int64) (OrderStatusOutput, error) {
	if orderID <= 0 {
		return OrderStatusOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out OrderStatusOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "Order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if o.Status == model.OrderStatusCancelled {
			out = OrderStatusOutput{Status: "AlreadyCancelled"}
			return nil
		}

		//在庫戻しは注文時に記録した数量を使う
		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		for _, it := range items {
			if err := r.Inventory().IncreaseStock(ctx, it.ProductID, it.Quantity); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		}

		if err := r.Orders().UpdateStatus(ctx, orderID, model.OrderStatusCancelled); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.AuditLogs().Create(ctx, model.AuditLog{
			Action:       model.AuditActionCancelOrder,
			ResourceType: model.AuditResourceOrder,
			ResourceID:   orderID,
			BeforeJSON:   statusJSON(o.Status),
			AfterJSON:    statusJSON(model.OrderStatusCancelled),
			CreatedAt:    time.Now(),
		}); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = OrderStatusOutput{Status: string(model.OrderStatusCancelled)}
		return nil
	})

	if err != nil {
		return OrderStatusOutput{}, err
	}
	return out, nil
}

func (u *OrderUsecase) List(ctx context.Context) ([]OrderSummaryOutput, error) {
	var outs []OrderSummaryOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		rows, err := r.Orders().ListWithCustomer(ctx)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]OrderSummaryOutput, 0, len(rows))
		for _, row := range rows {
			outs = append(outs, OrderSummaryOutput{
				ID:           row.ID,
				OrderDate:    row.OrderDate,
				TotalAmount:  row.TotalAmount,
				Status:       string(row.Status),
				CustomerName: row.CustomerName,
			})
		}
		return nil
	})

	if err != nil {
		return []OrderSummaryOutput{}, err
	}
	return outs, nil
}

func (u *OrderUsecase) Get(ctx context.Context, orderID int64) (OrderDetailOutput, error) {
	if orderID <= 0 {
		return OrderDetailOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out OrderDetailOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		header, err := r.Orders().FindWithCustomer(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "Order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		items, err := r.OrderItems().ListWithProduct(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outItems := make([]OrderItemOutput, 0, len(items))
		for _, it := range items {
			outItems = append(outItems, OrderItemOutput{
				ID:          it.ID,
				ProductID:   it.ProductID,
				ProductName: it.ProductName,
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
			})
		}

		out = OrderDetailOutput{
			ID:           header.ID,
			OrderDate:    header.OrderDate,
			TotalAmount:  header.TotalAmount,
			Status:       string(header.Status),
			CustomerName: header.CustomerName,
			Items:        outItems,
		}
		return nil
	})

	if err != nil {
		return OrderDetailOutput{}, err
	}
	return out, nil
}

// 注文のステータス変更履歴を古い順で返す
func (u *OrderUsecase) AuditTrail(ctx context.Context, orderID int64) ([]AuditEntryOutput, error) {
	if orderID <= 0 {
		return []AuditEntryOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var outs []AuditEntryOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Orders().FindByID(ctx, orderID); err != nil {
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusNotFound, "Order not found")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		logs, err := r.AuditLogs().ListByResource(ctx, model.AuditResourceOrder, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]AuditEntryOutput, 0, len(logs))
		for _, l := range logs {
			outs = append(outs, AuditEntryOutput{
				ID:        l.ID,
				Action:    string(l.Action),
				Before:    l.BeforeJSON,
				After:     l.AfterJSON,
				CreatedAt: l.CreatedAt,
			})
		}
		return nil
	})

	if err != nil {
		return []AuditEntryOutput{}, err
	}
	return outs, nil
}

func statusJSON(s model.OrderStatus) string {
	return `{"status":"` + string(s) + `"}`
}
