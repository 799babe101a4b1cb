package card

import "mahjong/internal/domain"

// Groups follow the order printed on the card. Equal ranks resolve to the
// earlier group. Components follow the printed order too; the hint panel
// relies on it.
func groups2025() []Group {
	return []Group{
		year2025(),
		evens2025(),
		likeNumbers2025(),
		quints2025(),
		consecutive2025(),
		odds2025(),
		windsDragons2025(),
		threeSixNine2025(),
		singlesPairs2025(),
	}
}

func likeNumbers2025() Group {
	return Group{
		Description: "LikeNumbers",
		Patterns: []Pattern{
			{
				Description: "FF 1111 D 1111 D 11 (Any 3 Suits)",
				VSuitCount:  3,
				Components: []Component{
					flowers(2), run(VSuit1, 1, 4), vdragon(VDragon1, 1),
					run(VSuit2, 1, 4), vdragon(VDragon2, 1), run(VSuit3, 1, 2),
				},
			},
			{
				Description: "FFFF 11 111 111 11 (Any 3 Suits. Pairs Must Be Same Suit)",
				VSuitCount:  3,
				Components: []Component{
					flowers(4), run(VSuit1, 1, 2), run(VSuit2, 1, 3),
					run(VSuit3, 1, 3), run(VSuit1, 1, 2),
				},
			},
			{
				Description: "FF 111 111 111 DDD (Any 3 Suits. Any Dragon)",
				VSuitCount:  3,
				Concealed:   true,
				Components: []Component{
					flowers(2), run(VSuit1, 1, 3), run(VSuit2, 1, 3),
					run(VSuit3, 1, 3), vdragon(VDragon1, 3),
				},
			},
		},
	}
}

func quints2025() Group {
	return Group{
		Description: "Quints",
		Patterns: []Pattern{
			{
				Description: "FF 111 2222 33333 (Any 3 Suits, Any 3 Consec. Nos)",
				VSuitCount:  3,
				Components: []Component{
					flowers(2), run(VSuit1, 1, 3), run(VSuit2, 2, 4), run(VSuit3, 3, 5),
				},
			},
			{
				Description: "11 111 NNNN 22222 (Any 1 Suit, Any Consec. Nos, Any Wind)",
				VSuitCount:  1,
				Components: []Component{
					run(VSuit1, 1, 2), run(VSuit1, 1, 3), wind(domain.North, 4), run(VSuit1, 2, 5),
				},
			},
			{
				Description: "FF 11111 11 11111 (Any 3 Suits, Any Like Nos)",
				VSuitCount:  3,
				Components: []Component{
					flowers(2), run(VSuit1, 1, 5), run(VSuit2, 1, 2), run(VSuit3, 1, 5),
				},
			},
		},
	}
}

func consecutive2025() Group {
	return Group{
		Description: "Consecutive",
		Patterns: []Pattern{
			{
				Description: "11 222 3333 444 55 (Any 1 Suit, These Nos Only)",
				VSuitCount:  1,
				Components: []Component{
					num(VSuit1, 1, 2), num(VSuit1, 2, 3), num(VSuit1, 3, 4),
					num(VSuit1, 4, 3), num(VSuit1, 5, 2),
				},
			},
			{
				Description: "55 666 7777 888 99 (Any 1 Suit, These Nos Only)",
				VSuitCount:  1,
				Components: []Component{
					num(VSuit1, 5, 2), num(VSuit1, 6, 3), num(VSuit1, 7, 4),
					num(VSuit1, 8, 3), num(VSuit1, 9, 2),
				},
			},
			{
				Description: "111 2222 333 4444 (Any 1 or 2 Suits, Any 4 Consec Nos)",
				VSuitCount:  1,
				Components: []Component{
					run(VSuit1, 1, 3), run(VSuit1, 2, 4), run(VSuit1, 3, 3), run(VSuit1, 4, 4),
				},
			},
			{
				Description: "111 2222 333 4444 (Any 1 or 2 Suits, Any 4 Consec Nos)",
				VSuitCount:  2,
				Components: []Component{
					run(VSuit1, 1, 3), run(VSuit1, 2, 4), run(VSuit2, 3, 3), run(VSuit2, 4, 4),
				},
			},
			{
				Description: "FFFF 1111 22 3333 (Any 1 or 3 Suits, Any 3 Consec Nos)",
				VSuitCount:  1,
				Components: []Component{
					flowers(4), run(VSuit1, 1, 4), run(VSuit1, 2, 2), run(VSuit1, 3, 4),
				},
			},
			{
				Description: "FFFF 1111 22 3333 (Any 1 or 3 Suits, Any 3 Consec Nos)",
				VSuitCount:  3,
				Components: []Component{
					flowers(4), run(VSuit1, 1, 4), run(VSuit2, 2, 2), run(VSuit3, 3, 4),
				},
			},
			{
				Description: "FFF 123 4444 5555 (Any 3 Suits, Any 5 Consec Nos)",
				VSuitCount:  3,
				Components: []Component{
					flowers(3), run(VSuit1, 1, 1), run(VSuit1, 2, 1), run(VSuit1, 3, 1),
					run(VSuit2, 4, 4), run(VSuit3, 5, 4),
				},
			},
			{
				Description: "FF 11 222 3333 DDD (Any 1 Suite, Any 3 Consec Nos)",
				VSuitCount:  1,
				Components: []Component{
					flowers(2), run(VSuit1, 1, 2), run(VSuit1, 2, 3), run(VSuit1, 3, 4),
					vdragon(VDragon1, 3),
				},
			},
			{
				Description: "111 222 3333 DD DD (Any 3 Suits, Any 3 consec Nos v Opp Dragons)",
				VSuitCount:  3,
				Components: []Component{
					run(VSuit1, 1, 3), run(VSuit1, 2, 3), run(VSuit1, 3, 4),
					vdragon(VDragon2, 2), vdragon(VDragon3, 2),
				},
			},
			{
				Description: "112345 1111 1111 (Any 5 Consec Nos, Pair Any Nos In Run, Kongs Match Pair)",
				VSuitCount:  3,
				Components: []Component{
					run(VSuit1, 1, 2), run(VSuit1, 2, 1), run(VSuit1, 3, 1), run(VSuit1, 4, 1),
					run(VSuit1, 5, 1), run(VSuit2, 1, 4), run(VSuit3, 1, 4),
				},
			},
			{
				Description: "FF 1 22 333 1 22 333 (Any 2 Suits, Any Same 3 Consec Nos)",
				VSuitCount:  2,
				Concealed:   true,
				Components: []Component{
					flowers(2), run(VSuit1, 1, 1), run(VSuit1, 2, 2), run(VSuit1, 3, 3),
					run(VSuit2, 1, 1), run(VSuit2, 2, 2), run(VSuit2, 3, 3),
				},
			},
		},
	}
}

func windsDragons2025() Group {
	return Group{
		Description: "WindsDragons",
		Patterns: []Pattern{
			{
				Description: "NNNN EEE WWW SSS",
				Components: []Component{
					wind(domain.North, 4), wind(domain.East, 3), wind(domain.West, 3), wind(domain.South, 4),
				},
			},
			{
				Description: "NNN EEEE WWWW SSS",
				Components: []Component{
					wind(domain.North, 3), wind(domain.East, 4), wind(domain.West, 4), wind(domain.South, 3),
				},
			},
			{
				Description: "FF 123 DD DDD DDDD (Any 3 Consec Nos in Any 1 Suite, Any 3 Dragons)",
				VSuitCount:  1,
				Components: []Component{
					flowers(2), run(VSuit1, 1, 1), run(VSuit1, 2, 1), run(VSuit1, 3, 1),
					vdragon(VDragon2, 2), vdragon(VDragon3, 3), vdragon(VDragon1, 4),
				},
			},
			{
				Description: "FFF NN EE WWW SSSS",
				Components: []Component{
					flowers(3), wind(domain.North, 2), wind(domain.East, 2), wind(domain.West, 3), wind(domain.South, 4),
				},
			},
			{
				Description: "FFFF DDD NEWS DDD (Dragons Any 2 Suits)",
				VSuitCount:  2,
				Components: []Component{
					flowers(4), vdragon(VDragon1, 3),
					wind(domain.North, 1), wind(domain.East, 1), wind(domain.West, 1), wind(domain.South, 1),
					vdragon(VDragon2, 3),
				},
			},
			{
				Description: "NNNN 1 11 111 SSSS (Any Like Odd Nos in 3 Suits)",
				VSuitCount:  3,
				Odd:         true,
				Components: []Component{
					wind(domain.North, 4), run(VSuit1, 1, 1), run(VSuit2, 1, 2), run(VSuit3, 1, 3), wind(domain.South, 4),
				},
			},
			{
				Description: "EEEE 2 22 222 WWWW (Any Like Even Nos in 3 Suits)",
				VSuitCount:  3,
				Even:        true,
				Components: []Component{
					wind(domain.East, 4), run(VSuit1, 1, 1), run(VSuit2, 1, 2), run(VSuit3, 1, 3), wind(domain.West, 4),
				},
			},
			{
				Description: "NN EEE WWW SS 2025 (2025 Any 1 Suit)",
				VSuitCount:  1,
				Components: []Component{
					wind(domain.North, 2), wind(domain.East, 3), wind(domain.West, 3), wind(domain.South, 2),
					num(VSuit1, 2, 1), dragon(domain.White, 1), num(VSuit1, 2, 1), num(VSuit1, 5, 1),
				},
			},
			{
				Description: "NNN EE WW SSS 2025 (2025 Any 1 Suit)",
				VSuitCount:  1,
				Components: []Component{
					wind(domain.North, 3), wind(domain.East, 2), wind(domain.West, 2), wind(domain.South, 3),
					num(VSuit1, 2, 1), dragon(domain.White, 1), num(VSuit1, 2, 1), num(VSuit1, 5, 1),
				},
			},
			{
				Description: "NN EE WWW SSS DDDD (Kong Any Dragon)",
				Concealed:   true,
				Components: []Component{
					wind(domain.North, 2), wind(domain.East, 2), wind(domain.West, 3), wind(domain.South, 3),
					vdragon(VDragon1, 4),
				},
			},
		},
	}
}

func threeSixNine2025() Group {
	return Group{
		Description: "369",
		Patterns: []Pattern{
			{
				Description: "333 6666 666 9999 (Any 2 or 3 Suits)",
				VSuitCount:  2,
				Components: []Component{
					num(VSuit1, 3, 3), num(VSuit1, 6, 4), num(VSuit2, 6, 3), num(VSuit2, 9, 4),
				},
			},
			{
				Description: "333 6666 666 9999 (Any 2 or 3 Suits)",
				VSuitCount:  3,
				Components: []Component{
					num(VSuit1, 3, 3), num(VSuit1, 6, 4), num(VSuit2, 6, 3), num(VSuit3, 9, 4),
				},
			},
			{
				Description: "FF 3333 + 6666 = 9999 (Any 1 or 3 Suits)",
				VSuitCount:  1,
				Components: []Component{
					flowers(2), num(VSuit1, 3, 4), num(VSuit1, 6, 4), num(VSuit1, 9, 4),
				},
			},
			{
				Description: "FF 3333 + 6666 = 9999 (Any 1 or 3 Suits)",
				VSuitCount:  3,
				Components: []Component{
					flowers(2), num(VSuit1, 3, 4), num(VSuit2, 6, 4), num(VSuit3, 9, 4),
				},
			},
			{
				Description: "3333 DDD 3333 DDD (Any 2 Suits, Like Kongs 3, 6, or 9 w Matching Dragons)",
				VSuitCount:  2,
				Components: []Component{
					num(VSuit1, 3, 4), vdragon(VDragon1, 3), num(VSuit2, 3, 4), vdragon(VDragon2, 3),
				},
			},
			{
				Description: "3333 DDD 3333 DDD (Any 2 Suits, Like Kongs 3, 6, or 9 w Matching Dragons)",
				VSuitCount:  2,
				Components: []Component{
					num(VSuit1, 6, 4), vdragon(VDragon1, 3), num(VSuit2, 6, 4), vdragon(VDragon2, 3),
				},
			},
			{
				Description: "3333 DDD 3333 DDD (Any 2 Suits, Like Kongs 3, 6, or 9 w Matching Dragons)",
				VSuitCount:  2,
				Components: []Component{
					num(VSuit1, 9, 4), vdragon(VDragon1, 3), num(VSuit2, 9, 4), vdragon(VDragon2, 3),
				},
			},
			{
				Description: "FFF 3333 369 9999 (Any 2 Suits)",
				VSuitCount:  2,
				Components: []Component{
					flowers(3), num(VSuit1, 3, 4), num(VSuit2, 3, 1), num(VSuit2, 6, 1),
					num(VSuit2, 9, 1), num(VSuit1, 9, 4),
				},
			},
			{
				Description: "33 66 99 3333 3333 (Any 3 Suits, Like Kongs 3, 6, or 9)",
				VSuitCount:  3,
				Components: []Component{
					num(VSuit1, 3, 2), num(VSuit1, 6, 2), num(VSuit1, 9, 2), num(VSuit2, 3, 4), num(VSuit3, 3, 4),
				},
			},
			{
				Description: "33 66 99 3333 3333 (Any 3 Suits, Like Kongs 3, 6, or 9)",
				VSuitCount:  3,
				Components: []Component{
					num(VSuit1, 3, 2), num(VSuit1, 6, 2), num(VSuit1, 9, 2), num(VSuit2, 6, 4), num(VSuit3, 6, 4),
				},
			},
			{
				Description: "33 66 99 3333 3333 (Any 3 Suits, Like Kongs 3, 6, or 9)",
				VSuitCount:  3,
				Components: []Component{
					num(VSuit1, 3, 2), num(VSuit1, 6, 2), num(VSuit1, 9, 2), num(VSuit2, 9, 4), num(VSuit3, 9, 4),
				},
			},
			{
				Description: "FF 333 D 666 D 999 D (Any 3 Suits w Matching Dragons)",
				VSuitCount:  3,
				Concealed:   true,
				Components: []Component{
					flowers(2), num(VSuit1, 3, 3), vdragon(VDragon1, 1), num(VSuit2, 6, 3),
					vdragon(VDragon2, 1), num(VSuit3, 9, 3), vdragon(VDragon3, 1),
				},
			},
		},
	}
}
