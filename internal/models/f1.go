package models

import "time"

// Team представляет команду Формулы-1.
type Team struct {
	ID          string `json:"id"`
	Num         int    `json:"num"`
	Name        string `json:"name"`
	Nationality string `json:"nationality"`
	URL         string `json:"url"`
}

// Driver представляет пилота Формулы-1.
//
// Team — денормализованная копия команды, снятая в момент записи пилота.
// Последующие изменения команды на существующих пилотов не распространяются.
type Driver struct {
	ID          string    `json:"id"`
	Num         int       `json:"num"`
	Code        string    `json:"code"`
	Forename    string    `json:"forename"`
	Surname     string    `json:"surname"`
	DOB         time.Time `json:"dob"`
	Nationality string    `json:"nationality"`
	URL         string    `json:"url"`
	Team        Team      `json:"team"`
}

// DummyDriver используется для приёма данных из JSON-запроса,
// прежде чем конвертировать их в Driver.
// Дата рождения приходит строкой, чтобы её можно было валидировать и парсить вручную.
type DummyDriver struct {
	Num         int    `json:"num" validate:"required,gt=0"`
	Code        string `json:"code" validate:"required,len=3,alpha"`
	Forename    string `json:"forename" validate:"required"`
	Surname     string `json:"surname" validate:"required"`
	DOB         string `json:"dob" validate:"required,datetime=02-01-2006"` // Дата в формате 02-01-2006
	Nationality string `json:"nationality" validate:"required,len=3,alpha"`
	URL         string `json:"url" validate:"omitempty,url"`
	TeamID      string `json:"team_id" validate:"required,uuid"`
}
