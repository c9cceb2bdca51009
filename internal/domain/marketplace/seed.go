package marketplace

import "time"

// authErrorMessage es el texto que ve el usuario al fallar login.
const authErrorMessage = "Неверный email или пароль"

func strptr(s string) *string { return &s }

// defaultState es el dataset semilla: se usa cuando no hay blob
// persistido o cuando el blob guardado no se puede decodificar.
// Los timestamps del chat semilla son relativos al arranque.
func defaultState(now time.Time) State {
	return State{
		Auth:      Session{},
		AuthError: "",
		Owners: []Owner{
			{
				ID:       "owner-1",
				FullName: "Анна Морозова",
				Email:    "anna@petty.ru",
				Password: "petty123",
				Phone:    "+7 999 111-22-33",
				City:     "Санкт-Петербург",
				Pets: []Pet{
					{
						ID:     "pet-1",
						Family: "Собака",
						Gender: "Мальчик",
						Age:    3,
						Name:   "Роки",
						Breed:  "Корги",
					},
					{
						ID:     "pet-2",
						Family: "Кошка",
						Gender: "Девочка",
						Age:    6,
						Name:   "Молли",
						Breed:  "Британская",
					},
				},
			},
			{
				ID:       "owner-2",
				FullName: "Дмитрий Ким",
				Email:    "dmitry@petty.ru",
				Password: "petty123",
				Phone:    "+7 999 444-55-66",
				City:     "Москва",
				Pets: []Pet{
					{
						ID:     "pet-3",
						Family: "Попугай",
						Gender: "Мальчик",
						Age:    2,
						Name:   "Клайд",
						Breed:  "Корелла",
					},
				},
			},
		},
		Sitters: []Sitter{
			{
				ID:       "sitter-1",
				FullName: "Мария Каренина",
				Email:    "maria@petty.ru",
				Password: "petty123",
				Phone:    "+7 905 000-12-12",
				City:     "Санкт-Петербург",
				Age:      28,
				Rating:   4.9,
				About:    "5 лет выгуливаю собак и умею работать с тревожными питомцами.",
			},
			{
				ID:       "sitter-2",
				FullName: "Игорь Сергеев",
				Email:    "igor@petty.ru",
				Password: "petty123",
				Phone:    "+7 901 333-77-90",
				City:     "Москва",
				Age:      32,
				Rating:   4.6,
				About:    "Люблю котов и собак, есть опыт с животными, нуждающимися в лекарствах.",
			},
		},
		Orders: []Order{
			{
				ID:               "order-1",
				OwnerID:          "owner-1",
				PetID:            "pet-1",
				Date:             "2025-02-18",
				Address:          "Санкт-Петербург, Невский проспект, 12",
				Comment:          "Нужно погулять вечером и покормить. Роки знает основные команды.",
				Status:           StatusOpen,
				Applicants:       []string{"sitter-1"},
				AssignedSitterID: nil,
				Chat:             []ChatMessage{},
			},
			{
				ID:               "order-2",
				OwnerID:          "owner-2",
				PetID:            "pet-3",
				Date:             "2025-02-22",
				Address:          "Москва, ул. Маршала Бирюзова, 8",
				Comment:          "Покормить дважды, обожает пообщаться. Вечером выключить лампу.",
				Status:           StatusAssigned,
				Applicants:       []string{"sitter-2"},
				AssignedSitterID: strptr("sitter-2"),
				Chat: []ChatMessage{
					{
						ID:         "msg-1",
						SenderRole: RoleOwner,
						SenderID:   "owner-2",
						Text:       "Здравствуйте! В субботу буду в отъезде, оставлю корм на кухне.",
						Timestamp:  now.Add(-12 * time.Hour).UnixMilli(),
					},
					{
						ID:         "msg-2",
						SenderRole: RoleSitter,
						SenderID:   "sitter-2",
						Text:       "Добрый день! Я буду к 10 утра. Есть ли любимые игрушки?",
						Timestamp:  now.Add(-6 * time.Hour).UnixMilli(),
					},
				},
			},
		},
	}
}
