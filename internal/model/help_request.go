// Package model содержит доменные структуры сервиса заявок на помощь.
package model

// HelpRequest описывает заявку на помощь: кто просит, из какой команды и
// откуда, когда заявка поступила, в чём проблема и решена ли она.
// ID назначается хранилищем при создании и дальше не меняется.
type HelpRequest struct {
	ID                  int64         `json:"id"`
	RequesterEmail      string        `json:"requesterEmail"`
	TeamID              string        `json:"teamId"`
	TableOrBreakoutRoom string        `json:"tableOrBreakoutRoom"`
	RequestTime         LocalDateTime `json:"requestTime"`
	Explanation         string        `json:"explanation"`
	Solved              bool          `json:"solved"`
}

// WithFieldsFrom возвращает копию заявки, в которой все изменяемые поля
// взяты из incoming. ID остаётся прежним.
func (h HelpRequest) WithFieldsFrom(incoming HelpRequest) HelpRequest {
	h.RequesterEmail = incoming.RequesterEmail
	h.TeamID = incoming.TeamID
	h.TableOrBreakoutRoom = incoming.TableOrBreakoutRoom
	h.RequestTime = incoming.RequestTime
	h.Explanation = incoming.Explanation
	h.Solved = incoming.Solved
	return h
}
