package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"

	"example/storefront/internal/logger"
	"example/storefront/internal/models"
	"example/storefront/internal/store"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Server exposes the state store over a WebSocket action-dispatch API
type Server struct {
	store *store.Store
}

func New(st *store.Store) *Server {
	return &Server{store: st}
}

// HandleWebSocket handles incoming WebSocket connections
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Errorw("WebSocket upgrade error", "error", err, "remote_addr", r.RemoteAddr)
		return
	}
	defer conn.Close()

	clientAddr := conn.RemoteAddr().String()
	logger.Log.Infow("Client connected", "remote_addr", clientAddr)

	for {
		_, p, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Warnw("WebSocket error", "error", err, "remote_addr", clientAddr)
			}
			break
		}

		// Try to unmarshal as an array (batch) of messages first
		var batch []models.WSMessage
		if err := json.Unmarshal(p, &batch); err == nil && len(batch) > 0 {
			var responses []models.WSResponse
			for _, m := range batch {
				responses = append(responses, s.handleMessage(m, clientAddr))
			}
			if err := conn.WriteJSON(responses); err != nil {
				logger.Log.Errorw("Write error", "error", err, "remote_addr", clientAddr)
				break
			}
			continue
		}

		// Otherwise, try single message
		var msg models.WSMessage
		if err := json.Unmarshal(p, &msg); err != nil {
			logger.Log.Warnw("Invalid message format", "remote_addr", clientAddr, "error", err)
			response := models.WSResponse{Success: false, Error: "invalid message format"}
			if err := conn.WriteJSON(response); err != nil {
				logger.Log.Errorw("Write error", "error", err, "remote_addr", clientAddr)
				break
			}
			continue
		}

		response := s.handleMessage(msg, clientAddr)
		if err := conn.WriteJSON(response); err != nil {
			logger.Log.Errorw("Write error", "error", err, "remote_addr", clientAddr)
			break
		}
	}

	logger.Log.Infow("Client disconnected", "remote_addr", clientAddr)
}

// listResponse wraps a getX call result into a response
func listResponse(data interface{}, err error) models.WSResponse {
	if err != nil {
		return models.WSResponse{Success: false, Error: err.Error()}
	}
	return models.WSResponse{Success: true, Data: data}
}

// mutationResponse wraps a void mutation result into a response
func mutationResponse(err error) models.WSResponse {
	if err != nil {
		return models.WSResponse{Success: false, Error: err.Error()}
	}
	return models.WSResponse{Success: true}
}

// handleMessage processes a single WSMessage and returns a WSResponse
func (s *Server) handleMessage(msg models.WSMessage, clientAddr string) models.WSResponse {
	logger.Log.Debugw("Processing action", "action", msg.Action, "remote_addr", clientAddr)

	switch msg.Action {
	case "getUsers":
		users, err := s.store.Users()
		return listResponse(users, err)

	case "addUser":
		var user models.User
		if err := json.Unmarshal(msg.Data, &user); err != nil {
			return models.WSResponse{Success: false, Error: "invalid user data"}
		}
		return mutationResponse(s.store.AddUser(user))

	case "verifyUser":
		var token string
		if err := json.Unmarshal(msg.Data, &token); err != nil {
			return models.WSResponse{Success: false, Error: "invalid token data"}
		}
		result := s.store.VerifyUser(token)
		return models.WSResponse{Success: result.Success, Error: result.Error}

	case "updateUserCredits":
		var req struct {
			UserID string  `json:"userId"`
			Amount float64 `json:"amount"`
		}
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			return models.WSResponse{Success: false, Error: "invalid credit update data"}
		}
		return mutationResponse(s.store.UpdateUserCredits(req.UserID, req.Amount))

	case "getItems":
		items, err := s.store.Items()
		return listResponse(items, err)

	case "addItem":
		var item models.Item
		if err := json.Unmarshal(msg.Data, &item); err != nil {
			return models.WSResponse{Success: false, Error: "invalid item data"}
		}
		return mutationResponse(s.store.AddItem(item))

	case "updateItem":
		var item models.Item
		if err := json.Unmarshal(msg.Data, &item); err != nil {
			return models.WSResponse{Success: false, Error: "invalid item data"}
		}
		found, err := s.store.UpdateItem(item)
		if err != nil {
			return models.WSResponse{Success: false, Error: err.Error()}
		}
		return models.WSResponse{Success: true, Data: map[string]interface{}{"found": found}}

	case "deleteItem":
		var itemID string
		if err := json.Unmarshal(msg.Data, &itemID); err != nil {
			return models.WSResponse{Success: false, Error: "invalid item ID"}
		}
		return mutationResponse(s.store.DeleteItem(itemID))

	case "getPurchases":
		purchases, err := s.store.Purchases()
		return listResponse(purchases, err)

	case "addPurchase":
		var purchase models.Purchase
		if err := json.Unmarshal(msg.Data, &purchase); err != nil {
			return models.WSResponse{Success: false, Error: "invalid purchase data"}
		}
		return mutationResponse(s.store.AddPurchase(purchase))

	case "processPurchase":
		var req struct {
			UserID string `json:"userId"`
			ItemID string `json:"itemId"`
		}
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			return models.WSResponse{Success: false, Error: "invalid purchase request"}
		}
		result, err := s.store.ProcessPurchase(req.UserID, req.ItemID)
		if err != nil {
			return models.WSResponse{Success: false, Error: err.Error()}
		}
		if !result.Success {
			return models.WSResponse{Success: false, Error: result.Error}
		}
		return models.WSResponse{Success: true, Data: result}

	case "getTransactions":
		txs, err := s.store.Transactions()
		return listResponse(txs, err)

	case "addTransaction":
		var tx models.Transaction
		if err := json.Unmarshal(msg.Data, &tx); err != nil {
			return models.WSResponse{Success: false, Error: "invalid transaction data"}
		}
		return mutationResponse(s.store.AddTransaction(tx))

	case "updateTransactionStatus":
		var req struct {
			ID     string                   `json:"id"`
			Status models.TransactionStatus `json:"status"`
		}
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			return models.WSResponse{Success: false, Error: "invalid status update data"}
		}
		return mutationResponse(s.store.UpdateTransactionStatus(req.ID, req.Status))

	case "getRedeemCodes":
		codes, err := s.store.RedeemCodes()
		return listResponse(codes, err)

	case "addRedeemCode":
		var code models.RedeemCode
		if err := json.Unmarshal(msg.Data, &code); err != nil {
			return models.WSResponse{Success: false, Error: "invalid redeem code data"}
		}
		return mutationResponse(s.store.AddRedeemCode(code))

	case "redeem":
		var req struct {
			UserID string `json:"userId"`
			Code   string `json:"code"`
		}
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			return models.WSResponse{Success: false, Error: "invalid redeem request"}
		}
		result, err := s.store.Redeem(req.UserID, req.Code)
		if err != nil {
			return models.WSResponse{Success: false, Error: err.Error()}
		}
		if !result.Success {
			return models.WSResponse{Success: false, Error: result.Error}
		}
		return models.WSResponse{Success: true, Data: result}

	case "getTickets":
		tickets, err := s.store.Tickets()
		return listResponse(tickets, err)

	case "createTicket":
		var ticket models.Ticket
		if err := json.Unmarshal(msg.Data, &ticket); err != nil {
			return models.WSResponse{Success: false, Error: "invalid ticket data"}
		}
		return mutationResponse(s.store.CreateTicket(ticket))

	case "addTicketMessage":
		var req struct {
			TicketID string               `json:"ticketId"`
			Message  models.TicketMessage `json:"message"`
		}
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			return models.WSResponse{Success: false, Error: "invalid ticket message data"}
		}
		return mutationResponse(s.store.AddTicketMessage(req.TicketID, req.Message))

	case "closeTicket":
		var ticketID string
		if err := json.Unmarshal(msg.Data, &ticketID); err != nil {
			return models.WSResponse{Success: false, Error: "invalid ticket ID"}
		}
		return mutationResponse(s.store.CloseTicket(ticketID))

	default:
		logger.Log.Warnw("Unknown action", "action", msg.Action, "remote_addr", clientAddr)
		return models.WSResponse{Success: false, Error: "unknown action: " + msg.Action}
	}
}
