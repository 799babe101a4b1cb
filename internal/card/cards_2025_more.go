package card

import "mahjong/internal/domain"

// A white dragon stands in for the zero in year hands.
func zero(count int) Component { return dragon(domain.White, count) }

func year2025() Group {
	return Group{
		Description: "2025",
		Patterns: []Pattern{
			{
				Description: "FFFF 2025 222 222 (Any 3 Suits, Like Pungs 2s or 5s In Opp. Suits)",
				VSuitCount:  3,
				Components: []Component{
					flowers(4), num(VSuit1, 2, 1), zero(1), num(VSuit1, 2, 1), num(VSuit1, 5, 1),
					num(VSuit2, 5, 3), num(VSuit3, 5, 3),
				},
			},
			{
				Description: "FFFF 2025 222 222 (Any 3 Suits, Like Pungs 2s or 5s In Opp. Suits)",
				VSuitCount:  3,
				Components: []Component{
					flowers(4), num(VSuit1, 2, 1), zero(1), num(VSuit1, 2, 1), num(VSuit1, 5, 1),
					num(VSuit2, 2, 3), num(VSuit3, 2, 3),
				},
			},
			{
				Description: "222 0000 222 5555 (Any 2 Suits)",
				VSuitCount:  2,
				Components: []Component{
					num(VSuit1, 2, 3), zero(4), num(VSuit2, 2, 3), num(VSuit2, 5, 4),
				},
			},
			{
				Description: "2025 222 555 DDDD (Any 3 Suits)",
				VSuitCount:  3,
				Components: []Component{
					num(VSuit1, 2, 1), zero(1), num(VSuit1, 2, 1), num(VSuit1, 5, 1),
					num(VSuit2, 2, 3), num(VSuit2, 5, 3), vdragon(VDragon3, 4),
				},
			},
			{
				Description: "FF 222 000 222 555 (Any 3 Suits)",
				VSuitCount:  3,
				Concealed:   true,
				Components: []Component{
					flowers(2), num(VSuit1, 2, 3), zero(3), num(VSuit2, 2, 3), num(VSuit3, 5, 3),
				},
			},
		},
	}
}

func evens2025() Group {
	return Group{
		Description: "2468",
		Patterns: []Pattern{
			{
				Description: "222 4444 666 8888 (Any 1 or 2 Suits)",
				VSuitCount:  1,
				Components: []Component{
					num(VSuit1, 2, 3), num(VSuit1, 4, 4), num(VSuit1, 6, 3), num(VSuit1, 8, 4),
				},
			},
			{
				Description: "222 4444 666 8888 (Any 1 or 2 Suits)",
				VSuitCount:  2,
				Components: []Component{
					num(VSuit1, 2, 3), num(VSuit1, 4, 4), num(VSuit2, 6, 3), num(VSuit2, 8, 4),
				},
			},
			{
				Description: "FF 2222 + 4444 = 6666 (Any 3 Suits)",
				VSuitCount:  3,
				Components: []Component{
					flowers(2), num(VSuit1, 2, 4), num(VSuit2, 4, 4), num(VSuit3, 6, 4),
				},
			},
			{
				Description: "FF 2222 + 6666 = 8888 (Any 3 Suits)",
				VSuitCount:  3,
				Components: []Component{
					flowers(2), num(VSuit1, 2, 4), num(VSuit2, 6, 4), num(VSuit3, 8, 4),
				},
			},
			{
				Description: "22 444 66 888 DDDD (Any 1 Suit)",
				VSuitCount:  1,
				Components: []Component{
					num(VSuit1, 2, 2), num(VSuit1, 4, 3), num(VSuit1, 6, 2), num(VSuit1, 8, 3), vdragon(VDragon1, 4),
				},
			},
			{
				Description: "FFFF 2468 222 222 (Any 3 Suits, Like Pungs, Any Even No.)",
				VSuitCount:  3,
				Even:        true,
				Components: []Component{
					flowers(4), num(VSuit1, 2, 1), num(VSuit1, 4, 1), num(VSuit1, 6, 1), num(VSuit1, 8, 1),
					run(VSuit2, 1, 3), run(VSuit3, 1, 3),
				},
			},
			{
				Description: "FFF 22 44 666 8888 (Any 1 Suit)",
				VSuitCount:  1,
				Components: []Component{
					flowers(3), num(VSuit1, 2, 2), num(VSuit1, 4, 2), num(VSuit1, 6, 3), num(VSuit1, 8, 4),
				},
			},
			{
				Description: "222 4444 666 88 88 (Any 3 Suits. Pairs 8s Only)",
				VSuitCount:  3,
				Components: []Component{
					num(VSuit1, 2, 3), num(VSuit1, 4, 4), num(VSuit1, 6, 3), num(VSuit2, 8, 2), num(VSuit3, 8, 2),
				},
			},
			{
				Description: "FF 2222 DDDD 2222 (Any 3 Suits, Like Kongs. Any Even No.)",
				VSuitCount:  3,
				Even:        true,
				Components: []Component{
					flowers(2), run(VSuit1, 1, 4), vdragon(VDragon2, 4), run(VSuit3, 1, 4),
				},
			},
			{
				Description: "22 44 66 88 222 222 (Any 3 Suits. Like Pungs. Any Even No.)",
				VSuitCount:  3,
				Concealed:   true,
				Even:        true,
				Components: []Component{
					num(VSuit1, 2, 2), num(VSuit1, 4, 2), num(VSuit1, 6, 2), num(VSuit1, 8, 2),
					run(VSuit2, 1, 3), run(VSuit3, 1, 3),
				},
			},
		},
	}
}

func odds2025() Group {
	return Group{
		Description: "13579",
		Patterns: []Pattern{
			{
				Description: "11 333 5555 777 99 (Any 1 or 3 Suits)",
				VSuitCount:  1,
				Components: []Component{
					num(VSuit1, 1, 2), num(VSuit1, 3, 3), num(VSuit1, 5, 4), num(VSuit1, 7, 3), num(VSuit1, 9, 2),
				},
			},
			{
				Description: "11 333 5555 777 99 (Any 1 or 3 Suits)",
				VSuitCount:  3,
				Components: []Component{
					num(VSuit1, 1, 2), num(VSuit1, 3, 3), num(VSuit2, 5, 4), num(VSuit3, 7, 3), num(VSuit3, 9, 2),
				},
			},
			{
				Description: "111 3333 333 555 (Any 2 Suits)",
				VSuitCount:  2,
				Components: []Component{
					num(VSuit1, 1, 3), num(VSuit1, 3, 4), num(VSuit2, 3, 3), num(VSuit2, 5, 4),
				},
			},
			{
				Description: "555 7777 777 9999 (Any 2 Suits)",
				VSuitCount:  2,
				Components: []Component{
					num(VSuit1, 5, 3), num(VSuit1, 7, 4), num(VSuit2, 7, 3), num(VSuit2, 9, 4),
				},
			},
			{
				Description: "1111 333 5555 DDD (Any 1 Suit)",
				VSuitCount:  1,
				Components: []Component{
					num(VSuit1, 1, 4), num(VSuit1, 3, 3), num(VSuit1, 5, 4), vdragon(VDragon1, 3),
				},
			},
			{
				Description: "5555 777 9999 DDD (Any 1 Suit)",
				VSuitCount:  1,
				Components: []Component{
					num(VSuit1, 5, 4), num(VSuit1, 7, 3), num(VSuit1, 9, 4), vdragon(VDragon1, 3),
				},
			},
			{
				Description: "FFFF 1111 + 9999 = 10 (Any 2 Suits, These Nos Only)",
				VSuitCount:  2,
				Components: []Component{
					flowers(4), num(VSuit1, 1, 4), num(VSuit1, 9, 4), num(VSuit2, 1, 1), zero(1),
				},
			},
			{
				Description: "FFF 135 7777 9999 (Any 1 or 3 Suits)",
				VSuitCount:  1,
				Components: []Component{
					flowers(3), num(VSuit1, 1, 1), num(VSuit1, 3, 1), num(VSuit1, 5, 1),
					num(VSuit1, 7, 4), num(VSuit1, 9, 4),
				},
			},
			{
				Description: "FFF 135 7777 9999 (Any 1 or 3 Suits)",
				VSuitCount:  3,
				Components: []Component{
					flowers(3), num(VSuit1, 1, 1), num(VSuit1, 3, 1), num(VSuit1, 5, 1),
					num(VSuit2, 7, 4), num(VSuit3, 9, 4),
				},
			},
			{
				Description: "111 333 555 DD DD (Any 3 Suits w/ Opp. Dragons)",
				VSuitCount:  3,
				Components: []Component{
					num(VSuit1, 1, 3), num(VSuit1, 3, 3), num(VSuit1, 5, 4), vdragon(VDragon2, 2), vdragon(VDragon3, 2),
				},
			},
			{
				Description: "555 777 9999 DD DD (Any 3 Suits w/ Opp. Dragons)",
				VSuitCount:  3,
				Components: []Component{
					num(VSuit1, 5, 3), num(VSuit1, 7, 3), num(VSuit1, 9, 4), vdragon(VDragon2, 2), vdragon(VDragon3, 2),
				},
			},
			{
				Description: "11 333 NEWS 333 55 (Any 2 Suits)",
				VSuitCount:  2,
				Components: []Component{
					num(VSuit1, 1, 2), num(VSuit1, 3, 3),
					wind(domain.North, 1), wind(domain.East, 1), wind(domain.West, 1), wind(domain.South, 1),
					num(VSuit2, 3, 3), num(VSuit2, 5, 2),
				},
			},
			{
				Description: "55 777 NEWS 777 99 (Any 2 Suits)",
				VSuitCount:  2,
				Components: []Component{
					num(VSuit1, 5, 2), num(VSuit1, 7, 3),
					wind(domain.North, 1), wind(domain.East, 1), wind(domain.West, 1), wind(domain.South, 1),
					num(VSuit2, 7, 3), num(VSuit2, 9, 2),
				},
			},
			{
				Description: "1111 33 55 77 9999 (Any 2 Suits)",
				VSuitCount:  2,
				Components: []Component{
					num(VSuit1, 1, 4), num(VSuit2, 3, 2), num(VSuit2, 5, 2), num(VSuit2, 7, 2), num(VSuit1, 9, 4),
				},
			},
			{
				Description: "FF 11 33 111 333 55 (Any 3 Suits)",
				VSuitCount:  3,
				Concealed:   true,
				Components: []Component{
					flowers(2), num(VSuit1, 1, 2), num(VSuit1, 3, 2), num(VSuit2, 1, 3), num(VSuit2, 3, 3), num(VSuit3, 5, 2),
				},
			},
			{
				Description: "FF 55 77 555 777 99 (Any 3 Suits)",
				VSuitCount:  3,
				Concealed:   true,
				Components: []Component{
					flowers(2), num(VSuit1, 5, 2), num(VSuit1, 7, 2), num(VSuit2, 5, 3), num(VSuit2, 7, 3), num(VSuit3, 9, 2),
				},
			},
		},
	}
}

func singlesPairs2025() Group {
	return Group{
		Description: "SinglesPairs",
		Patterns: []Pattern{
			{
				Description: "NN EW SS 11 22 33 44 (Any 1 Suit, Any 4 Consec Nos)",
				VSuitCount:  1,
				Concealed:   true,
				Components: []Component{
					wind(domain.North, 2), wind(domain.East, 1), wind(domain.West, 1), wind(domain.South, 2),
					run(VSuit1, 1, 2), run(VSuit1, 2, 2), run(VSuit1, 3, 2), run(VSuit1, 4, 2),
				},
			},
			{
				Description: "FF 2468 DD 2468 DD (Any 2 Suits w Matching Dragons)",
				VSuitCount:  2,
				Concealed:   true,
				Components: []Component{
					flowers(2),
					num(VSuit1, 2, 1), num(VSuit1, 4, 1), num(VSuit1, 6, 1), num(VSuit1, 8, 1), vdragon(VDragon1, 2),
					num(VSuit2, 2, 1), num(VSuit2, 4, 1), num(VSuit2, 6, 1), num(VSuit2, 8, 1), vdragon(VDragon2, 2),
				},
			},
			{
				Description: "336699 336699 33 (Any 3 Suits, Pair 3, 6, or 9 in Third Suit)",
				VSuitCount:  3,
				Concealed:   true,
				Components:  threeSixNinePairs(3),
			},
			{
				Description: "336699 336699 33 (Any 3 Suits, Pair 3, 6, or 9 in Third Suit)",
				VSuitCount:  3,
				Concealed:   true,
				Components:  threeSixNinePairs(6),
			},
			{
				Description: "336699 336699 33 (Any 3 Suits, Pair 3, 6, or 9 in Third Suit)",
				VSuitCount:  3,
				Concealed:   true,
				Components:  threeSixNinePairs(9),
			},
			{
				Description: "FF 11 22 11 22 11 22 (Any 3 Suits, Any 2 Consec Nos)",
				VSuitCount:  3,
				Concealed:   true,
				Components: []Component{
					flowers(2),
					run(VSuit1, 1, 2), run(VSuit1, 2, 2),
					run(VSuit2, 1, 2), run(VSuit2, 2, 2),
					run(VSuit3, 1, 2), run(VSuit3, 2, 2),
				},
			},
			{
				Description: "11 33 55 77 99 11 11 (Any 3 Suits, Pairs Any Like Odd Nos in Opp. Suits)",
				VSuitCount:  3,
				Concealed:   true,
				Odd:         true,
				Components: []Component{
					num(VSuit1, 1, 2), num(VSuit1, 3, 2), num(VSuit1, 5, 2), num(VSuit1, 7, 2), num(VSuit1, 9, 2),
					run(VSuit2, 1, 2), run(VSuit3, 1, 2),
				},
			},
			{
				Description: "FF 2025 2025 2025 (Any 3 Suits)",
				VSuitCount:  3,
				Concealed:   true,
				Components: []Component{
					flowers(2),
					num(VSuit1, 2, 1), zero(1), num(VSuit1, 2, 1), num(VSuit1, 5, 1),
					num(VSuit2, 2, 1), zero(1), num(VSuit2, 2, 1), num(VSuit2, 5, 1),
					num(VSuit3, 2, 1), zero(1), num(VSuit3, 2, 1), num(VSuit3, 5, 1),
				},
			},
		},
	}
}

// threeSixNinePairs is 336699 in two suits and a pair of n in the third.
func threeSixNinePairs(n int) []Component {
	return []Component{
		num(VSuit1, 3, 2), num(VSuit1, 6, 2), num(VSuit1, 9, 2),
		num(VSuit2, 3, 2), num(VSuit2, 6, 2), num(VSuit2, 9, 2),
		num(VSuit3, n, 2),
	}
}
