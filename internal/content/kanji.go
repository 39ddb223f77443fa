package content

import "github.com/example/kanabot/pkg/models"

// kanjiCatalog is a starter set of common first-grade kanji. Romaji carries
// the primary on'yomi reading used for typed answers.
var kanjiCatalog = []models.Character{
	{Script: models.ScriptKanji, Glyph: "一", Romaji: "ichi", Meaning: "one", Category: "numbers", Difficulty: 1, Examples: "一つ (ひとつ) - one thing\n一人 (ひとり) - one person\n一日 (いちにち) - one day"},
	{Script: models.ScriptKanji, Glyph: "二", Romaji: "ni", Meaning: "two", Category: "numbers", Difficulty: 1, Examples: "二つ (ふたつ) - two things\n二人 (ふたり) - two people"},
	{Script: models.ScriptKanji, Glyph: "三", Romaji: "san", Meaning: "three", Category: "numbers", Difficulty: 1, Examples: "三つ (みっつ) - three things\n三月 (さんがつ) - March"},
	{Script: models.ScriptKanji, Glyph: "四", Romaji: "shi", Meaning: "four", Category: "numbers", Difficulty: 2, Examples: "四つ (よっつ) - four things\n四月 (しがつ) - April"},
	{Script: models.ScriptKanji, Glyph: "五", Romaji: "go", Meaning: "five", Category: "numbers", Difficulty: 1, Examples: "五つ (いつつ) - five things\n五月 (ごがつ) - May"},
	{Script: models.ScriptKanji, Glyph: "六", Romaji: "roku", Meaning: "six", Category: "numbers", Difficulty: 2, Examples: "六つ (むっつ) - six things\n六月 (ろくがつ) - June"},
	{Script: models.ScriptKanji, Glyph: "七", Romaji: "shichi", Meaning: "seven", Category: "numbers", Difficulty: 2, Examples: "七つ (ななつ) - seven things\n七月 (しちがつ) - July"},
	{Script: models.ScriptKanji, Glyph: "八", Romaji: "hachi", Meaning: "eight", Category: "numbers", Difficulty: 2, Examples: "八つ (やっつ) - eight things\n八月 (はちがつ) - August"},
	{Script: models.ScriptKanji, Glyph: "九", Romaji: "kyuu", Meaning: "nine", Category: "numbers", Difficulty: 2, Examples: "九つ (ここのつ) - nine things\n九月 (くがつ) - September"},
	{Script: models.ScriptKanji, Glyph: "十", Romaji: "juu", Meaning: "ten", Category: "numbers", Difficulty: 1, Examples: "十日 (とおか) - ten days\n十月 (じゅうがつ) - October"},
	{Script: models.ScriptKanji, Glyph: "人", Romaji: "hito", Meaning: "person", Category: "people", Difficulty: 1, Examples: "日本人 (にほんじん) - Japanese person\n大人 (おとな) - adult"},
	{Script: models.ScriptKanji, Glyph: "水", Romaji: "mizu", Meaning: "water", Category: "nature", Difficulty: 1, Examples: "水曜日 (すいようび) - Wednesday\nお水 (おみず) - water (polite)"},
	{Script: models.ScriptKanji, Glyph: "火", Romaji: "hi", Meaning: "fire", Category: "nature", Difficulty: 1, Examples: "火曜日 (かようび) - Tuesday\n花火 (はなび) - fireworks"},
	{Script: models.ScriptKanji, Glyph: "土", Romaji: "tsuchi", Meaning: "earth/soil", Category: "nature", Difficulty: 2, Examples: "土曜日 (どようび) - Saturday\nお土産 (おみやげ) - souvenir"},
	{Script: models.ScriptKanji, Glyph: "木", Romaji: "ki", Meaning: "tree/wood", Category: "nature", Difficulty: 1, Examples: "木曜日 (もくようび) - Thursday\n木の下 (きのした) - under a tree"},
	{Script: models.ScriptKanji, Glyph: "金", Romaji: "kane", Meaning: "gold/money/metal", Category: "nature", Difficulty: 2, Examples: "金曜日 (きんようび) - Friday\nお金 (おかね) - money"},
	{Script: models.ScriptKanji, Glyph: "日", Romaji: "nichi", Meaning: "day/sun", Category: "time", Difficulty: 1, Examples: "日本 (にほん) - Japan\n毎日 (まいにち) - every day"},
	{Script: models.ScriptKanji, Glyph: "月", Romaji: "tsuki", Meaning: "month/moon", Category: "time", Difficulty: 3, Examples: "月曜日 (げつようび) - Monday\n一月 (いちがつ) - January"},
	{Script: models.ScriptKanji, Glyph: "年", Romaji: "toshi", Meaning: "year", Category: "time", Difficulty: 2, Examples: "今年 (ことし) - this year\n来年 (らいねん) - next year"},
	{Script: models.ScriptKanji, Glyph: "時", Romaji: "toki", Meaning: "time/hour", Category: "time", Difficulty: 3, Examples: "時間 (じかん) - time\n何時 (なんじ) - what time"},
	{Script: models.ScriptKanji, Glyph: "山", Romaji: "yama", Meaning: "mountain", Category: "nature", Difficulty: 1, Examples: "富士山 (ふじさん) - Mt. Fuji\n山登り (やまのぼり) - mountain climbing"},
	{Script: models.ScriptKanji, Glyph: "川", Romaji: "kawa", Meaning: "river", Category: "nature", Difficulty: 1, Examples: "川口 (かわぐち) - river mouth"},
	{Script: models.ScriptKanji, Glyph: "海", Romaji: "umi", Meaning: "sea/ocean", Category: "nature", Difficulty: 2, Examples: "海岸 (かいがん) - coast\n海外 (かいがい) - overseas"},
	{Script: models.ScriptKanji, Glyph: "手", Romaji: "te", Meaning: "hand", Category: "body", Difficulty: 1, Examples: "手紙 (てがみ) - letter\n上手 (じょうず) - skillful"},
	{Script: models.ScriptKanji, Glyph: "目", Romaji: "me", Meaning: "eye", Category: "body", Difficulty: 1, Examples: "目覚まし (めざまし) - alarm clock"},
	{Script: models.ScriptKanji, Glyph: "口", Romaji: "kuchi", Meaning: "mouth/entrance", Category: "body", Difficulty: 1, Examples: "入口 (いりぐち) - entrance\n出口 (でぐち) - exit"},
	{Script: models.ScriptKanji, Glyph: "父", Romaji: "chichi", Meaning: "father", Category: "people", Difficulty: 2, Examples: "お父さん (おとうさん) - father (polite)"},
	{Script: models.ScriptKanji, Glyph: "母", Romaji: "haha", Meaning: "mother", Category: "people", Difficulty: 2, Examples: "お母さん (おかあさん) - mother (polite)"},
	{Script: models.ScriptKanji, Glyph: "子", Romaji: "ko", Meaning: "child", Category: "people", Difficulty: 1, Examples: "子供 (こども) - child\n女の子 (おんなのこ) - girl"},
	{Script: models.ScriptKanji, Glyph: "行", Romaji: "iku", Meaning: "go", Category: "verbs", Difficulty: 3, Examples: "行く (いく) - to go\n旅行 (りょこう) - travel"},
}
